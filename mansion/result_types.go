package mansion

// FiletimeResult is the two-way conversion output of a timestamp.
//
// For command `filetime`
type FiletimeResult struct {
	Filetime uint64 `json:"filetime"`
	Time     string `json:"time"`
	High     uint32 `json:"high"`
	Low      uint32 `json:"low"`
}

// BuildResult describes the version description we just assembled.
//
// For command `build`
type BuildResult struct {
	OutPath string   `json:"outPath,omitempty"`
	Tables  []string `json:"tables"`
	Text    string   `json:"text"`
}
