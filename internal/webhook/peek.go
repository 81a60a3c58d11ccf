package webhook

import (
	"github.com/go-faster/jx"
)

// envelope holds the fields read before the payload is fully parsed.
type envelope struct {
	Action     string
	Repository string
}

// peek reads the action and repository full name of a payload without decoding
// the rest of it. It fails on invalid JSON.
func peek(body []byte) (envelope, error) {
	var env envelope
	d := jx.DecodeBytes(body)
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "action":
			if d.Next() != jx.String {
				return d.Skip()
			}
			s, err := d.Str()
			env.Action = s

			return err
		case "repository":
			if d.Next() != jx.Object {
				return d.Skip()
			}

			return d.ObjBytes(func(d *jx.Decoder, key []byte) error {
				if string(key) != "full_name" || d.Next() != jx.String {
					return d.Skip()
				}
				s, err := d.Str()
				env.Repository = s

				return err
			})
		default:
			return d.Skip()
		}
	})

	return env, err
}
