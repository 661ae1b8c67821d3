package apiconnect

import "encoding/json"

// Codec marshals plain Go structs as JSON under the "json" codec name, so
// Connect clients and handlers speak application/json without generated
// protobuf types.
type Codec struct{}

func (Codec) Name() string { return "json" }

func (Codec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (Codec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}
