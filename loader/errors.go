package loader

// MissingWordList - Custom error to inform that a word list file could not be opened
type MissingWordList struct {
	msg string
}

// Error - Used to notify that a word list file is missing
func (E MissingWordList) Error() string {
	if E.msg == "" {
		return "word list file missing"
	}
	return E.msg
}

// ShortWordList - Custom error to inform that a word list holds no usable words
type ShortWordList struct {
	msg string
}

// Error - Used to notify that a word list is too short
func (E ShortWordList) Error() string {
	if E.msg == "" {
		return "word list has no words"
	}
	return E.msg
}

// KeyRange - Custom error to inform that the requested keys do not fit in an int64
type KeyRange struct {
	msg string
}

// Error - Used to notify that generated keys would overflow
func (E KeyRange) Error() string {
	if E.msg == "" {
		return "generated keys out of range"
	}
	return E.msg
}
