package skillswap

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// validate checks request structs before any network call is issued; failures
// never reach the gateway.
var validate = newValidator()

var timeOfDayRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// timeofday matches 24h "HH:MM" wall-clock strings.
	_ = v.RegisterValidation("timeofday", func(fl validator.FieldLevel) bool {
		return timeOfDayRe.MatchString(fl.Field().String())
	})
	return v
}

// checkStruct runs tag validation and converts the first failure into a
// ValidationError.
func checkStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		fe := errs[0]
		return &ValidationError{Field: fe.Field(), Message: "failed " + fe.Tag() + " check"}
	}
	return &ValidationError{Field: "request", Message: err.Error()}
}

// checkTimeSlots validates slot shape and ordering. Start must be strictly
// before End; the comparison is lexicographic, which is correct for zero-padded
// "HH:MM" strings.
func checkTimeSlots(field string, slots []TimeSlot) error {
	for _, slot := range slots {
		if err := checkStruct(slot); err != nil {
			return err
		}
		if slot.Start >= slot.End {
			return &ValidationError{Field: field, Message: "slot start must be before end"}
		}
	}
	return nil
}
