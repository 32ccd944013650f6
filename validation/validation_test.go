package validation_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/fp/option"
	"github.com/npillmayer/fp/persistent/list"
	"github.com/npillmayer/fp/try"
	"github.com/npillmayer/fp/validation"
)

// person is the canonical record validated in the scenarios below.
type person struct {
	name string
	age  int
}

func newPerson(name string, age int) person {
	return person{name: name, age: age}
}

func (p person) String() string {
	return fmt.Sprintf("Person(name=%s, age=%d)", p.name, p.age)
}

const (
	nameErr = "Invalid characters in name: "
	ageErr  = "Age must be at least 0"
)

func validateName(name string) validation.Validation[string, string] {
	var invalid strings.Builder
	for _, r := range name {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && r != ' ' {
			invalid.WriteRune(r)
		}
	}
	if invalid.Len() > 0 {
		return validation.Invalid[string, string](nameErr + invalid.String())
	}
	return validation.Valid[string](name)
}

func validateAge(age int) validation.Validation[string, int] {
	if age < 0 {
		return validation.Invalid[string, int](ageErr)
	}
	return validation.Valid[string](age)
}

func validatePerson(name string, age int) validation.Validation[string, person] {
	return validation.Ap(
		validation.Combine(validateName(name), validateAge(age)),
		newPerson,
	)
}

func TestValidationPersonValid(t *testing.T) {
	valid := validatePerson("John Doe", 30)
	require.True(t, valid.IsValid())
	assert.Equal(t, "Valid(Person(name=John Doe, age=30))", valid.String())
}

func TestValidationPersonInvalid(t *testing.T) {
	invalid := validatePerson("John? Doe!4", -1)
	require.True(t, invalid.IsInvalid())
	// both rules ran independently; both errors present, in argument order
	assert.Equal(t,
		"Invalid(List(Invalid characters in name: ?!4, Age must be at least 0))",
		invalid.String())
}

func TestValidationCombineBothValid(t *testing.T) {
	ctor := func(x, y int) int { return x*100 + y }
	v := validation.Ap(
		validation.Combine(validation.Valid[string](3), validation.Valid[string](4)),
		ctor,
	)
	assert.Equal(t, "Valid(304)", v.String())
}

func TestValidationCombineAccumulatesAllErrors(t *testing.T) {
	ctor := func(x, y int) int {
		t.Fatal("expected constructor not to be invoked for invalid inputs, was")
		return 0
	}
	v := validation.Ap(
		validation.Combine(
			validation.Invalid[string, int]("e1"),
			validation.Invalid[string, int]("e2"),
		),
		ctor,
	)
	require.True(t, v.IsInvalid())
	assert.True(t, list.Equal(v.Errors(), list.Of("e1", "e2")))
}

func TestValidationCombine3(t *testing.T) {
	v := validation.Ap3(
		validation.Combine3(
			validation.Valid[string]("a"),
			validation.Invalid[string, int]("bad b"),
			validation.Invalid[string, bool]("bad c"),
		),
		func(a string, b int, c bool) string { return a },
	)
	assert.Equal(t, "Invalid(List(bad b, bad c))", v.String())
}

func TestValidationMapAndFold(t *testing.T) {
	doubled := validation.Map(validation.Valid[string](21), func(n int) int { return n * 2 })
	assert.Equal(t, 42, doubled.Get())

	folded := validation.Fold(
		validation.Invalid[string, int]("nope"),
		func(n int) string { return "ok" },
		func(errs list.List[string]) string { return errs.MkString("; ") },
	)
	assert.Equal(t, "nope", folded)
}

func TestValidationMapError(t *testing.T) {
	upper := validation.MapError(
		validation.Invalid[string, int]("boom"),
		strings.ToUpper,
	)
	assert.Equal(t, "Invalid(List(BOOM))", upper.String())
}

func TestValidationConversions(t *testing.T) {
	fromSome := validation.FromOption(option.Some(7), "missing")
	assert.Equal(t, "Valid(7)", fromSome.String())

	fromNone := validation.FromOption(option.None[int](), "missing")
	assert.Equal(t, "Invalid(List(missing))", fromNone.String())

	fromFailure := validation.FromTry(
		try.Failure[int](errors.New("down")),
		func(err error) string { return err.Error() },
	)
	assert.Equal(t, "Invalid(List(down))", fromFailure.String())

	assert.True(t, fromFailure.ToOption().IsEmpty())
	assert.Equal(t, "Some(7)", fromSome.ToOption().String())
}

func TestValidationInvalidsRequiresErrors(t *testing.T) {
	assert.Panics(t, func() {
		validation.Invalids[string, int](list.Empty[string]())
	})
}
