package component

import (
	"strings"

	"github.com/google/uuid"
)

// Version is the plugin assembly version.
const Version = "1.0.0"

// Library describes a plugin assembly and the components it provides.
type Library struct {
	Name          string
	Description   string
	ID            uuid.UUID
	AuthorName    string
	AuthorContact string
	Version       string
	components    []Component
}

// Plugin returns the library holding the Addition, Subtraction and
// FingerJoint components.
func Plugin() *Library {
	return &Library{
		Name:       "MyAddition",
		ID:         uuid.MustParse("e6b73c7a-ed2e-4a6b-a46d-07b1601892c3"),
		Version:    Version,
		components: []Component{Addition{}, Subtraction{}, FingerJoint{}},
	}
}

// Components returns the library's components in registration order.
func (l *Library) Components() []Component {
	return append([]Component(nil), l.components...)
}

// Lookup finds a component by GUID, name or nickname. Names are matched
// case insensitively.
func (l *Library) Lookup(key string) (Component, bool) {
	id, err := uuid.Parse(key)
	for _, c := range l.components {
		info := c.Info()
		if err == nil && info.ID == id {
			return c, true
		}
		if strings.EqualFold(info.Name, key) || strings.EqualFold(info.Nickname, key) {
			return c, true
		}
	}
	return nil, false
}
