// util/json.go
// Copyright(c) 2022-2025 weaponlab contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

func UnmarshalJSON[T any](r io.Reader, out *T) error {
	// Unfortunately we need the contents as an array of bytes so that we
	// can issue reasonable errors.
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return UnmarshalJSONBytes(b, out)
}

// UnmarshalJSONBytes unmarshals into the given type but reports syntax
// and type errors with a line and character position.
func UnmarshalJSONBytes[T any](b []byte, out *T) error {
	err := json.Unmarshal(b, out)
	if err == nil {
		return nil
	}

	switch jerr := err.(type) {
	case *json.SyntaxError:
		line, char := offsetPosition(b, jerr.Offset)
		return fmt.Errorf("Error at line %d, character %d: %v", line, char, jerr)

	case *json.UnmarshalTypeError:
		line, char := offsetPosition(b, jerr.Offset)
		return fmt.Errorf("Error at line %d, character %d: %s value for %s.%s invalid for type %s",
			line, char, jerr.Value, jerr.Struct, jerr.Field, jerr.Type.String())

	default:
		return err
	}
}

func offsetPosition(b []byte, offset int64) (line, char int) {
	line, char = 1, 1
	for i := 0; i < int(offset) && i < len(b); i++ {
		if b[i] == '\n' {
			line++
			char = 1
		} else {
			char++
		}
	}
	return
}

// DuplicateObjectKeys returns the keys of the top-level JSON object that
// appear more than once, in the order their repeats are found.
// encoding/json silently keeps the last one, which is rarely what the
// author of a hand-edited table meant.
func DuplicateObjectKeys(data []byte) []string {
	dec := json.NewDecoder(bytes.NewReader(data))

	var dups []string
	seen := make(map[string]bool)
	depth := 0
	expectKey := false

	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}

		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
			// Opening the root object or finishing a nested value in it.
			if depth == 1 {
				expectKey = v != '['
			}
		default:
			if depth != 1 {
				continue
			}
			if expectKey {
				k, _ := v.(string)
				if seen[k] {
					dups = append(dups, k)
				}
				seen[k] = true
				expectKey = false
			} else {
				expectKey = true
			}
		}
	}
	return dups
}
