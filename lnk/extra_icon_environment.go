package lnk

// IconEnvironment holds an icon path containing environment variables.
type IconEnvironment struct {
	ANSI    string `json:"ansi,omitempty"`
	Unicode string `json:"unicode,omitempty"`
}

func parseExtraIconEnvironment(size uint32, data []byte) (*IconEnvironment, error) {
	ansi, unicode, err := parsePathBlock("icon environment block", size, data)
	if err != nil {
		return nil, err
	}
	return &IconEnvironment{ANSI: ansi, Unicode: unicode}, nil
}
