package lnk

// Darwin holds the application identifier of a Windows Installer target.
type Darwin struct {
	ANSI    string `json:"ansi,omitempty"`
	Unicode string `json:"unicode,omitempty"`
}

func parseExtraDarwin(size uint32, data []byte) (*Darwin, error) {
	ansi, unicode, err := parsePathBlock("darwin block", size, data)
	if err != nil {
		return nil, err
	}
	return &Darwin{ANSI: ansi, Unicode: unicode}, nil
}
