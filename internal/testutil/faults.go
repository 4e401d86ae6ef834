package testutil

import "github.com/specialistvlad/paramgrid/internal/param"

type panickingCollection struct {
	msg    string
	events param.Emitter
}

// PanickingCollection returns a collection whose Parameters method panics
// with msg.
func PanickingCollection(msg string) param.Collection {
	return &panickingCollection{msg: msg}
}

func (c *panickingCollection) Parameters() []param.Access { panic(c.msg) }
func (c *panickingCollection) Children() []param.Child    { return nil }
func (c *panickingCollection) Events() *param.Emitter     { return &c.events }

// FailingChild returns a child slot whose resolver fails with err.
func FailingChild(key string, err error) param.Child {
	return param.Child{
		Key:     key,
		Resolve: func() (param.Collection, error) { return nil, err },
	}
}
