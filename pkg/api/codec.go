package api

import "encoding/json"

// JSONCodec marshals plain Go messages with encoding/json. It is registered
// under the "json" name, replacing Connect's protobuf JSON codec, so handlers
// and clients speak application/json without generated protobuf types.
type JSONCodec struct{}

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (JSONCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
