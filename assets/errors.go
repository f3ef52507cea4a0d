package assets

import (
	"errors"
	"fmt"
)

// FetchError reports that network retrieval of a reference failed.
type FetchError struct {
	URL    string
	Status int // HTTP status code, 0 if the request never completed
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetching %s: unexpected status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// DecodeError reports that a payload could not be decoded to raw bytes.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decoding asset: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("decoding asset: %s", e.Reason)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsFetch reports whether err is (or wraps) a FetchError.
func IsFetch(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}

// IsDecode reports whether err is (or wraps) a DecodeError.
func IsDecode(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}
