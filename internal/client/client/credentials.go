package client

import (
	"encoding/json"
	"fmt"
)

const hexDigits = "0123456789abcdef"

// credentialsBody builds the JSON object for /users and /login by hand so
// the password never becomes a Go string. Only username and email go through
// encoding/json. The caller wipes the result once the request is sent.
// The email key is written only when an email is passed.
func credentialsBody(username string, password []byte, email ...string) ([]byte, error) {
	user, err := json.Marshal(username)
	if err != nil {
		return nil, fmt.Errorf("encode username: %w", err)
	}
	var mail []byte
	if len(email) > 0 {
		if mail, err = json.Marshal(email[0]); err != nil {
			return nil, fmt.Errorf("encode email: %w", err)
		}
	}

	// sized up front so appends never reallocate and strand a copy
	b := make([]byte, 0, 48+len(user)+len(mail)+6*len(password))
	b = append(b, `{"username":`...)
	b = append(b, user...)
	if mail != nil {
		b = append(b, `,"email":`...)
		b = append(b, mail...)
	}
	b = append(b, `,"password":"`...)
	b = appendEscaped(b, password)
	b = append(b, `"}`...)
	return b, nil
}

// appendEscaped writes p as the inside of a JSON string. Bytes at or above
// 0x80 pass through unchanged.
func appendEscaped(b, p []byte) []byte {
	for _, c := range p {
		switch {
		case c == '"' || c == '\\':
			b = append(b, '\\', c)
		case c == '\n':
			b = append(b, '\\', 'n')
		case c == '\r':
			b = append(b, '\\', 'r')
		case c == '\t':
			b = append(b, '\\', 't')
		case c < 0x20:
			b = append(b, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
		default:
			b = append(b, c)
		}
	}
	return b
}
