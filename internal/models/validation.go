package models

// ValidUsername reports whether name is an acceptable username: 6 to 20
// characters, letters and digits only.
func ValidUsername(name string) bool {
	if len(name) < 6 || len(name) > 20 {
		return false
	}
	for _, c := range name {
		if !isDigit(c) && !isLetter(c) {
			return false
		}
	}
	return true
}

// ValidPassword reports whether pass is an acceptable password: 6 to 20
// characters, at least one letter, one digit and one of '!' or '?', with no
// other characters allowed.
func ValidPassword(pass string) bool {
	if len(pass) < 6 || len(pass) > 20 {
		return false
	}
	var hasDigit, hasLetter, hasSpecial bool
	for _, c := range pass {
		switch {
		case isDigit(c):
			hasDigit = true
		case isLetter(c):
			hasLetter = true
		case c == '!' || c == '?':
			hasSpecial = true
		default:
			return false
		}
	}
	return hasDigit && hasLetter && hasSpecial
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
