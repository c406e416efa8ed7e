package catalog

import (
	"fmt"
	"strings"
)

// ValidateStatus checks status against Statuses.
func ValidateStatus(status string) error {
	return validateAgainst(Statuses, CodeInvalidStatus, "status", status)
}

// ValidateGender checks gender against Genders.
func ValidateGender(gender string) error {
	return validateAgainst(Genders, CodeInvalidGender, "gender", gender)
}

// ValidateSpecies checks species against Species.
func ValidateSpecies(species string) error {
	return validateAgainst(Species, CodeInvalidSpecies, "species", species)
}

// ValidateOrigin checks origin against Origins.
func ValidateOrigin(origin string) error {
	return validateAgainst(Origins, CodeInvalidOrigin, "origin", origin)
}

// ValidateCharacter runs every allow-list check and returns the first failure.
// Both the read-view and the form-view write paths go through here.
func ValidateCharacter(c *Character) error {
	if c == nil {
		return InvalidData("character must not be empty")
	}
	checks := []func(string) error{ValidateStatus, ValidateGender, ValidateSpecies, ValidateOrigin}
	values := []string{c.Status, c.Gender, c.Species, c.Origin}
	for i, check := range checks {
		if err := check(values[i]); err != nil {
			return err
		}
	}
	return nil
}

func validateAgainst(list AllowList, code, field, value string) error {
	if strings.TrimSpace(value) == "" {
		return invalidField(code, field, value, field+" must not be empty")
	}
	if !list.Allows(value) {
		return invalidField(code, field, value,
			fmt.Sprintf("invalid %s: %s. Valid values: %s", field, value, list))
	}
	return nil
}
