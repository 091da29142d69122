// Package cli implements the offline classify command. It loads model
// artifacts from a local directory and runs the same decision path as the
// HTTP service.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	urfave "github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"spamlens/internal/config"
	"spamlens/internal/domain"
	"spamlens/internal/model"
	"spamlens/internal/ocr"
	"spamlens/internal/ocr/ocrspace"
	"spamlens/internal/port"
	"spamlens/internal/service"
	"spamlens/internal/storage/local"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	version = "v0.0.1-default"

	textFlag = &urfave.StringFlag{
		Name:  "text",
		Usage: "Message text to classify",
	}

	imageFlag = &urfave.StringFlag{
		Name:      "image",
		Usage:     "Path to an image to OCR and merge with --text",
		TakesFile: true,
	}

	modelDirFlag = &urfave.StringFlag{
		Name:    "model-dir",
		Usage:   "Directory holding the model manifest and artifacts",
		Value:   "./models",
		Sources: urfave.EnvVars("SPAMLENS_MODEL_DIR"),
	}

	manifestFlag = &urfave.StringFlag{
		Name:    "manifest",
		Usage:   "Manifest file name inside --model-dir",
		Value:   "manifest.yaml",
		Sources: urfave.EnvVars("SPAMLENS_MODEL_MANIFEST"),
	}

	ocrKeyFlag = &urfave.StringFlag{
		Name:    "ocr-key",
		Usage:   "OCR.space API key (required with --image)",
		Sources: urfave.EnvVars("SPAMLENS_OCR_API_KEY", "OCR_API_KEY"),
	}

	ocrEndpointFlag = &urfave.StringFlag{
		Name:    "ocr-endpoint",
		Usage:   "OCR.space parse endpoint",
		Sources: urfave.EnvVars("SPAMLENS_OCR_ENDPOINT"),
	}

	formatFlag = &urfave.StringFlag{
		Name:  "format",
		Usage: "Output format [json, yaml]",
		Value: formatJSON,
	}

	debugFlag = &urfave.BoolFlag{
		Name:  "debug",
		Usage: "Prints verbose logs (optional, default: false)",
	}
)

// result is the CLI output document.
type result struct {
	Label        domain.Label `json:"final_label" yaml:"final_label"`
	Text         string       `json:"text" yaml:"text"`
	Score        float64      `json:"total_score" yaml:"total_score"`
	ModelVersion string       `json:"model_version" yaml:"model_version"`
}

// Execute creates and runs the CLI application.
func Execute() {
	initLogging(false)

	if err := NewCommand().Run(context.Background(), os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

// NewCommand returns the root classify command.
func NewCommand() *urfave.Command {
	return &urfave.Command{
		Name:    "classify",
		Version: version,
		Usage:   "Classify a message (and optional image) as spam or ham",
		Flags: []urfave.Flag{
			textFlag,
			imageFlag,
			modelDirFlag,
			manifestFlag,
			ocrKeyFlag,
			ocrEndpointFlag,
			formatFlag,
			debugFlag,
		},
		Action: classifyAction,
	}
}

func classifyAction(ctx context.Context, cmd *urfave.Command) error {
	if cmd.Bool(debugFlag.Name) {
		initLogging(true)
	}

	format, err := parseFormat(cmd.String(formatFlag.Name))
	if err != nil {
		return err
	}

	modelDir := cmd.String(modelDirFlag.Name)
	pair, err := model.Load(ctx, local.NewFSStore(modelDir), cmd.String(manifestFlag.Name))
	if err != nil {
		return fmt.Errorf("loading model from %s: %w", modelDir, err)
	}
	slog.Debug("model loaded", "version", pair.Version(), "kind", pair.Kind(), "features", pair.NumFeatures())

	var img *domain.ImageUpload
	if path := cmd.String(imageFlag.Name); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading image: %w", err)
		}
		img = &domain.ImageUpload{FileName: filepath.Base(path), Data: data}
		slog.Debug("image read", "path", path, "bytes", len(data))
	}

	var client port.OCRClient
	if key := strings.TrimSpace(cmd.String(ocrKeyFlag.Name)); key != "" {
		client = ocrspace.NewClientWithEndpoint(&config.OCRConfig{APIKey: key}, cmd.String(ocrEndpointFlag.Name))
	}

	svc := service.NewClassificationService(pair, ocr.NewAdapter(client))
	decision, err := svc.ClassifyAll(ctx, service.ClassifyAllInput{
		Text:  cmd.String(textFlag.Name),
		Image: img,
	})
	if err != nil {
		return err
	}

	return encode(cmd.Root().Writer, format, result{
		Label:        decision.Label,
		Text:         decision.Text,
		Score:        decision.Score,
		ModelVersion: pair.Version(),
	})
}

func parseFormat(f string) (string, error) {
	switch strings.ToLower(f) {
	case formatJSON, "":
		return formatJSON, nil
	case formatYAML, "yml":
		return formatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format %q (want json or yaml)", f)
	}
}

func initLogging(debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))
}

func encode(w io.Writer, format string, v any) error {
	if w == nil {
		w = os.Stdout
	}
	if format == formatYAML {
		return yaml.NewEncoder(w).Encode(v)
	}
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	return e.Encode(v)
}
