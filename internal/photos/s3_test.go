package photos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "profile_photos/u1_avatar.png", Key("u1", "avatar.png"))
}

func TestKeyStripsDirectories(t *testing.T) {
	// Uploaded filenames may carry path components; only the base name lands
	// in the object key.
	assert.Equal(t, "profile_photos/u1_avatar.png", Key("u1", "../../avatar.png"))
}
