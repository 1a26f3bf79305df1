package driver

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Event is one progress notification a long-running verb (P in particular)
// emits through Options.Progress.
type Event struct {
	Distance   int
	Signature  []int
	BasesFound int
	Message    string
}

// ProgressFunc receives Events as a verb makes progress. May be nil.
type ProgressFunc func(Event)

// Options configures a driver verb's resource usage and reporting.
type Options struct {
	// Threads bounds worker-pool concurrency; <= 0 means "let the pool pick
	// runtime.GOMAXPROCS(0)", matching lemma3.NewRunner's own fallback.
	Threads int
	// OutputDir is the parent directory P writes under and S/T read from.
	OutputDir string
	// MaxSize bounds X's sweep to registry entries whose total brick count
	// is at most this many, per the testable-properties size budget.
	MaxSize  uint8
	Progress ProgressFunc
}

// Option mutates an Options being built by NewOptions.
type Option func(*Options)

// WithThreads sets Options.Threads.
func WithThreads(n int) Option { return func(o *Options) { o.Threads = n } }

// WithOutputDir sets Options.OutputDir.
func WithOutputDir(dir string) Option { return func(o *Options) { o.OutputDir = dir } }

// WithMaxSize sets Options.MaxSize.
func WithMaxSize(n uint8) Option { return func(o *Options) { o.MaxSize = n } }

// WithProgress sets Options.Progress.
func WithProgress(p ProgressFunc) Option { return func(o *Options) { o.Progress = p } }

// NewOptions builds an Options from defaults plus the given functional
// options, applied in order.
func NewOptions(opts ...Option) Options {
	o := Options{Threads: 0, OutputDir: ".", MaxSize: 8}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// fileOptions is the YAML shape LoadOptionsFile parses; zero/absent fields
// fall back to NewOptions' defaults.
type fileOptions struct {
	Threads   int   `yaml:"threads"`
	OutputDir string `yaml:"outputDir"`
	MaxSize   uint8 `yaml:"maxSize"`
}

// LoadOptionsFile reads a YAML configuration file and returns the Options
// it describes, starting from NewOptions' defaults for any field the file
// omits.
func LoadOptionsFile(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("driver: reading options file %s: %w", path, err)
	}
	var fo fileOptions
	if err := yaml.Unmarshal(data, &fo); err != nil {
		return Options{}, fmt.Errorf("driver: parsing options file %s: %w", path, err)
	}
	o := NewOptions()
	if fo.Threads != 0 {
		o.Threads = fo.Threads
	}
	if fo.OutputDir != "" {
		o.OutputDir = fo.OutputDir
	}
	if fo.MaxSize != 0 {
		o.MaxSize = fo.MaxSize
	}
	return o, nil
}
