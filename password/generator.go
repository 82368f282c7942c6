package password

// GeneratePassword produces a random password of the requested length that is
// guaranteed to satisfy the strength policy. One character from each required
// class is placed in the first four positions, the remaining positions are
// filled uniformly from the union of all classes, and the whole buffer is then
// shuffled so class origin is not tied to position.
//
// The returned buffer is owned by the caller, who is responsible for wiping it
// with Zero once it is no longer needed.
//
// Errors: ErrInvalidArgument when length is below MinPasswordLength.
func GeneratePassword(length int) ([]byte, error) {
	if length < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	password := make([]byte, length)

	classes := []string{UppercaseChars, LowercaseChars, DigitChars, SpecialChars}
	for i, class := range classes {
		n, err := randomIndex(len(class))
		if err != nil {
			Zero(password)
			return nil, err
		}
		password[i] = class[n]
	}

	for i := len(classes); i < length; i++ {
		n, err := randomIndex(len(allChars))
		if err != nil {
			Zero(password)
			return nil, err
		}
		password[i] = allChars[n]
	}

	for i := range password {
		j, err := randomIndex(length)
		if err != nil {
			Zero(password)
			return nil, err
		}
		password[i], password[j] = password[j], password[i]
	}

	return password, nil
}

// GenerateDefaultPassword produces a random strong password of
// DefaultPasswordLength characters.
func GenerateDefaultPassword() ([]byte, error) {
	return GeneratePassword(DefaultPasswordLength)
}
