// Package key provides typed bindings for the "key" section of the Torn
// API, which reports on the key used to make the request itself.
package key

import (
	"github.com/39C-wallenstein/torn-api/api"
)

// Category is the path segment for key requests.
const Category = "key"

// Selection names one block of key data the API can return.
type Selection string

const (
	SelectionInfo Selection = "info"
)

func (s Selection) String() string {
	return string(s)
}

// Response wraps a key payload with typed accessors.
type Response struct {
	*api.Response
}

// Info is the "info" selection: the key's access level and the
// selections it may request, grouped by section.
type Info struct {
	AccessLevel int                 `json:"access_level"`
	AccessType  string              `json:"access_type"`
	Selections  map[string][]string `json:"selections"`
}

// Info decodes the "info" selection.
func (r Response) Info() (*Info, error) {
	var info Info
	if err := r.Decode(&info); err != nil {
		return nil, err
	}
	return &info, nil
}
