package services

import (
	"fmt"
	"strings"

	"github.com/TommyTeaVee/impilo-regform/models"
	"golang.org/x/exp/slices"
)

var requiredFields = []string{"fullName", "email", "phone", "dob", "gender", "modelType"}

// One rule set per model type; adding a type means adding an entry here.
var modelTypeRules = map[string]func(fields map[string]string) string{
	models.ModelTypeFeatured: validateFeatured,
	models.ModelTypeInHouse:  validateInHouse,
}

// ValidateSubmission checks a candidate record and returns the first failing
// rule's message, or "" when the record is acceptable. Rules run in order:
// required fields, gender membership, model type membership, then the
// model-type branch.
func ValidateSubmission(fields map[string]string) string {
	for _, k := range requiredFields {
		if strings.TrimSpace(fields[k]) == "" {
			return fmt.Sprintf("Missing required field: %s", k)
		}
	}

	if !slices.Contains(models.Genders, fields["gender"]) {
		return "gender must be Female/Male/Non-Binary/Other"
	}

	rules, ok := modelTypeRules[fields["modelType"]]
	if !ok {
		return "modelType must be 'Featured' or 'InHouse'"
	}
	return rules(fields)
}

func validateFeatured(fields map[string]string) string {
	// portfolioLink and previousAgency stay optional
	return ""
}

func validateInHouse(fields map[string]string) string {
	if strings.TrimSpace(fields["bio"]) == "" {
		return "InHouse requires bio"
	}
	if strings.TrimSpace(fields["allergiesOrSkin"]) == "" {
		return "InHouse requires allergies/skin info"
	}
	return ""
}
