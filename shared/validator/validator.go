package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"kwagala/shared/failure"
	"kwagala/shared/timezone"

	val "github.com/go-playground/validator/v10"
)

var (
	validate *val.Validate

	phonePattern = regexp.MustCompile(`^\d{10}$`)
)

const maxDecimals = 2

// IsPhone reports whether s is exactly ten ASCII digits.
func IsPhone(s string) bool {
	return phonePattern.MatchString(s)
}

func registerPhoneValidation(field val.FieldLevel) bool {
	return IsPhone(field.Field().String())
}

// registerCentsValidation accepts amounts with at most two decimal places, the precision
// of a NUMERIC(_, 2) column. The shortest decimal form is what the client sent in JSON.
func registerCentsValidation(field val.FieldLevel) bool {
	formatted := strconv.FormatFloat(field.Field().Float(), 'f', -1, 64)

	_, decimals, found := strings.Cut(formatted, ".")

	return !found || len(decimals) <= maxDecimals
}

func registerDateValidation(field val.FieldLevel) bool {
	_, err := timezone.ParseDay(field.Field().String())

	return err == nil
}

func jsonTagName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonTagName)

	err := validate.RegisterValidation("phone", registerPhoneValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("date", registerDateValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("cents", registerCentsValidation)
	if err != nil {
		panic(err)
	}
}

// Decode reads a JSON document from r into data. Malformed bodies become a 400 failure.
func Decode[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)

	if err := decoder.Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
