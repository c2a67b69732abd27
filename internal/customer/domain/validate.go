package domain

import "regexp"

// Admission patterns for customer fields. Each rule is absent-or-matches:
// an empty value passes here and is left for the schema's required-field
// constraints to judge.
var (
	namePattern  = regexp.MustCompile(`^[A-Za-z' ]+$`)
	emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
	phonePattern = regexp.MustCompile(`^\+?\(?[0-9]{3}\)?[-\s.]?[0-9]{3}[-\s.]?[0-9]{4,6}$`)
)

func ValidName(name string) bool {
	return name == "" || namePattern.MatchString(name)
}

func ValidEmail(email string) bool {
	return email == "" || emailPattern.MatchString(email)
}

func ValidPhone(phone string) bool {
	return phone == "" || phonePattern.MatchString(phone)
}
