package api

import (
	"encoding/json"
)

func marshalEnum(name string) ([]byte, error) {
	return json.Marshal(name)
}

func unmarshalEnum(data []byte) (string, error) {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return "", err
	}
	return name, nil
}
