package lnk

// Environment holds a target path containing environment variables.
type Environment struct {
	ANSI    string `json:"ansi,omitempty"`
	Unicode string `json:"unicode,omitempty"`
}

func parseExtraEnvironment(size uint32, data []byte) (*Environment, error) {
	ansi, unicode, err := parsePathBlock("environment block", size, data)
	if err != nil {
		return nil, err
	}
	return &Environment{ANSI: ansi, Unicode: unicode}, nil
}
