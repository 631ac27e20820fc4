package model

// Window describes a named container: the identifying attributes
// the icon resolver matches against.
type Window struct {
	ID       int64  `yaml:"id"                 json:"id"`
	Name     string `yaml:"name"               json:"name"`
	AppID    string `yaml:"app_id,omitempty"   json:"app_id,omitempty"`
	Class    string `yaml:"class,omitempty"    json:"class,omitempty"`
	Instance string `yaml:"instance,omitempty" json:"instance,omitempty"`
	PID      int    `yaml:"pid,omitempty"      json:"pid,omitempty"`
}
