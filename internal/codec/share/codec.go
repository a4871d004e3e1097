// Package share implements the shareable-build URL codec: a whole build
// (bars, variants, equipment, tags) serialized to a single URL, with ordered
// lossy degradation when the result would exceed the URL length ceiling.
package share

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/klauspost/compress/flate"

	"github.com/gw1tools/gw1builds-sub003/internal/codec/template"
	"github.com/gw1tools/gw1builds-sub003/internal/entities/build"
	"github.com/gw1tools/gw1builds-sub003/internal/errors"
)

const (
	// WireVersion is written into every payload; decoders warn on other
	// versions but still attempt the decode.
	WireVersion = 1

	// MaxBars is the hard cap on bars per shared build.
	MaxBars = 12

	// DefaultMaxURLLen is the ceiling the degradation ladder targets.
	DefaultMaxURLLen = 1800

	// DefaultBaseURL prefixes generated links when the config leaves it unset.
	DefaultBaseURL = "https://gw1.tools/builds"

	paramVersion = "v"
	paramData    = "d"

	// lastResortBars is how many bars survive when the full degradation
	// ladder still cannot fit the build.
	lastResortBars = 4

	// maxInflatedSize bounds decompression of untrusted payloads.
	maxInflatedSize = 1 << 20
)

// DefaultTagVocabulary is the fixed tag list shared links index into. Order
// is part of the wire format; append only.
var DefaultTagVocabulary = []string{
	"pve", "pvp", "general", "hero", "farming", "running",
	"speed-clear", "mission", "vanquish", "dungeon", "arena", "gvg",
}

// Config holds the dependencies and tunables for the share codec.
type Config struct {
	Templates *template.Codec
	// BaseURL prefixes generated links; DefaultBaseURL when empty.
	BaseURL string
	// MaxURLLen is the degradation ceiling; DefaultMaxURLLen when zero.
	MaxURLLen int
	// TagVocabulary overrides DefaultTagVocabulary when non-nil.
	TagVocabulary []string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Templates == nil {
		vb.RequiredField("Templates")
	}
	if c.MaxURLLen < 0 {
		vb.InvalidField("MaxURLLen", "must not be negative")
	}
	return vb.Build()
}

// Codec converts between ShareableBuild values and share URLs. Safe for
// concurrent use.
type Codec struct {
	templates *template.Codec
	baseURL   string
	maxURLLen int
	tags      []string
	tagIndex  map[string]int
}

// New creates a new share codec
func New(cfg *Config) (*Codec, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := &Codec{
		templates: cfg.Templates,
		baseURL:   cfg.BaseURL,
		maxURLLen: cfg.MaxURLLen,
		tags:      cfg.TagVocabulary,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.maxURLLen == 0 {
		c.maxURLLen = DefaultMaxURLLen
	}
	if c.tags == nil {
		c.tags = DefaultTagVocabulary
	}
	c.tagIndex = make(map[string]int, len(c.tags))
	for i, tag := range c.tags {
		c.tagIndex[tag] = i
	}
	return c, nil
}

// EncodeOutput is the result of encoding a build to a share URL.
type EncodeOutput struct {
	URL string
	// Truncated reports whether any degradation step was applied.
	Truncated bool
	// Message describes the most destructive step taken, or "not truncated".
	Message string
}

// Encode serializes a build to a share URL. When the full build exceeds the
// length ceiling the ordered degradation ladder is applied until it fits;
// encoding never fails on size alone.
func (c *Codec) Encode(b *build.ShareableBuild) (*EncodeOutput, error) {
	if b == nil {
		return nil, errors.InvalidArgument("build is required")
	}
	if len(b.Bars) == 0 {
		return nil, errors.InvalidArgument("build has no skill bars")
	}
	if len(b.Bars) > MaxBars {
		return nil, errors.InvalidArgumentf("build has %d bars, maximum is %d", len(b.Bars), MaxBars)
	}

	w, err := c.toWire(b)
	if err != nil {
		return nil, err
	}

	link, err := c.assemble(w)
	if err != nil {
		return nil, err
	}
	if len(link) <= c.maxURLLen {
		return &EncodeOutput{URL: link, Message: "not truncated"}, nil
	}

	for _, step := range degradeSteps {
		step.apply(w)
		link, err = c.assemble(w)
		if err != nil {
			return nil, err
		}
		if len(link) <= c.maxURLLen {
			return &EncodeOutput{URL: link, Truncated: true, Message: step.message}, nil
		}
	}

	// Even a fully stripped build can exceed the ceiling when it carries
	// many bars; cut the bar list and return whatever length results.
	if len(w.Bars) > lastResortBars {
		w.Bars = w.Bars[:lastResortBars]
	}
	link, err = c.assemble(w)
	if err != nil {
		return nil, err
	}
	return &EncodeOutput{URL: link, Truncated: true, Message: lastResortMessage}, nil
}

// DecodeOutput is the result of decoding a share URL.
type DecodeOutput struct {
	Build *build.ShareableBuild
	// Warnings records recoverable oddities: version mismatches and bars
	// that fell back to defaults.
	Warnings []string
}

// Decode parses a share URL back into a build. Every unrecoverable failure
// maps to the single NoData code; per-bar template corruption degrades to a
// default bar with a warning instead.
func (c *Codec) Decode(rawURL string) (*DecodeOutput, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, errors.NoData("unparseable share URL")
	}

	payload := u.Query().Get(paramData)
	if payload == "" {
		return nil, errors.NoData("no build data in URL")
	}

	// Tolerate padded payloads from hand-edited links.
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(payload, "="))
	if err != nil {
		return nil, errors.NoData("build data is not valid base64")
	}

	blob, err := inflate(raw)
	if err != nil {
		return nil, errors.NoData("build data failed to decompress")
	}

	var w wireBuild
	if err := json.Unmarshal(blob, &w); err != nil {
		return nil, errors.NoData("build data is not valid")
	}
	if len(w.Bars) == 0 {
		return nil, errors.NoData("share link contains no skill bars")
	}
	if len(w.Bars) > MaxBars {
		return nil, errors.NoData("share link exceeds the bar limit")
	}

	var warnings []string
	if w.Version != WireVersion {
		warnings = append(warnings, fmt.Sprintf("share link uses format version %d, expected %d; decoded on a best-effort basis", w.Version, WireVersion))
	}

	decoded, barWarnings := c.fromWire(&w)
	warnings = append(warnings, barWarnings...)

	return &DecodeOutput{Build: decoded, Warnings: warnings}, nil
}

// assemble serializes a wire build into a full share URL.
func (c *Codec) assemble(w *wireBuild) (string, error) {
	blob, err := json.Marshal(w)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.CodeInternal, "failed to marshal build")
	}

	packed, err := deflate(blob)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.CodeInternal, "failed to compress build")
	}

	payload := base64.RawURLEncoding.EncodeToString(packed)
	return fmt.Sprintf("%s?%s=%d&%s=%s", c.baseURL, paramVersion, WireVersion, paramData, payload), nil
}

func (c *Codec) tagIndices(tags []string) []int {
	var out []int
	for _, tag := range tags {
		if i, ok := c.tagIndex[tag]; ok {
			out = append(out, i)
		}
	}
	return out
}

func (c *Codec) tagNames(indices []int) []string {
	var out []string
	for _, i := range indices {
		if i >= 0 && i < len(c.tags) {
			out = append(out, c.tags[i])
		}
	}
	return out
}

func deflate(raw []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(raw); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func inflate(raw []byte) ([]byte, error) {
	zr := flate.NewReader(bytes.NewReader(raw))
	defer func() { _ = zr.Close() }()
	return io.ReadAll(io.LimitReader(zr, maxInflatedSize))
}

func barFallbackWarning(bar int, err error) string {
	return fmt.Sprintf("bar %d has an unreadable template (%s); replaced with an empty Warrior bar", bar+1, errors.GetMessage(err))
}

func variantDroppedWarning(bar, variant int, err error) string {
	return fmt.Sprintf("variant %d of bar %d has an unreadable template (%s); dropped", variant+1, bar+1, errors.GetMessage(err))
}
