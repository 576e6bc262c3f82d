package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/dyuri/fsaverage/internal/text"
	"github.com/dyuri/fsaverage/pkg/fsaverage"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fsaverage",
		Short: "Inspect surface mesh, label and color table files",
		Long: `fsaverage loads anatomical surface files and reports what they contain.

Files are recognized by extension:
  .mesh   binary vertices and triangles
  .label  binary per-vertex labels
  .lut    text color lookup table`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			logrus.SetOutput(cmd.ErrOrStderr())
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.InfoLevel)
			}
		},
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log every loaded file")
	rootCmd.PersistentFlags().Int("codepage", text.CodePageUTF8, "Character encoding of .lut names")
	rootCmd.PersistentFlags().Int64("max-elements", 0, "Reject arrays declaring more values than this (0: no limit)")

	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newLutCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// surfaceOptions maps persistent flags onto Surface options
func surfaceOptions(cmd *cobra.Command) []fsaverage.Option {
	codePage, _ := cmd.Flags().GetInt("codepage")
	maxElements, _ := cmd.Flags().GetInt64("max-elements")
	return []fsaverage.Option{
		fsaverage.WithLogger(logrus.StandardLogger()),
		fsaverage.WithCodePage(codePage),
		fsaverage.WithMaxElements(maxElements),
	}
}

// info command
func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>...",
		Short: "Load files into one surface and display its contents",
		Long: `Load one or more .mesh, .label and .lut files into a single surface,
in the order given, and display vertex, face, label and color table counts.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runInfo,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	cmd.Flags().Int("vertices", 0, "Also print the first N vertices")
	return cmd
}

func runInfo(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	nVertices, _ := cmd.Flags().GetInt("vertices")

	s, err := fsaverage.LoadFiles(args, surfaceOptions(cmd)...)
	if err != nil {
		return err
	}

	nVertices = min(max(nVertices, 0), s.VertexCount())
	if jsonOutput {
		return outputInfoJSON(cmd.OutOrStdout(), args, s, nVertices)
	}
	return outputInfoText(cmd.OutOrStdout(), args, s, nVertices)
}

func outputInfoText(w io.Writer, paths []string, s *fsaverage.Surface, nVertices int) error {
	fmt.Fprintf(w, "Surface: %s\n", strings.Join(paths, ", "))
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  Vertices:         %d\n", s.VertexCount())
	fmt.Fprintf(w, "  Triangles:        %d\n", s.FaceCount())
	fmt.Fprintf(w, "  Labels:           %d\n", len(s.Labels))
	fmt.Fprintf(w, "  LUT entries:      %d\n", len(s.LUT))

	if len(s.Labels) > 0 && s.VertexCount() > 0 && len(s.Labels) != s.VertexCount() {
		fmt.Fprintf(w, "\n  note: %d labels for %d vertices\n", len(s.Labels), s.VertexCount())
	}

	if nVertices > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Vertices:")
		for i := 0; i < nVertices; i++ {
			v := s.Vertex(i)
			fmt.Fprintf(w, "  %6d  %12.6f %12.6f %12.6f\n", i, v[0], v[1], v[2])
		}
	}
	return nil
}

func outputInfoJSON(w io.Writer, paths []string, s *fsaverage.Surface, nVertices int) error {
	info := map[string]interface{}{
		"files": paths,
		"counts": map[string]int{
			"vertices":  s.VertexCount(),
			"triangles": s.FaceCount(),
			"labels":    len(s.Labels),
			"lut":       len(s.LUT),
		},
	}

	if nVertices > 0 {
		vertices := make([][3]jsonFloat, nVertices)
		for i := range vertices {
			v := s.Vertex(i)
			vertices[i] = [3]jsonFloat{jsonFloat(v[0]), jsonFloat(v[1]), jsonFloat(v[2])}
		}
		info["vertices"] = vertices
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(info)
}

// jsonFloat encodes NaN and infinities as the strings "NaN", "+Inf" and
// "-Inf", which plain JSON numbers cannot represent
type jsonFloat float32

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte(strconv.Quote(strconv.FormatFloat(v, 'g', -1, 32))), nil
	}
	return []byte(strconv.FormatFloat(v, 'g', -1, 32)), nil
}

// lut command
func newLutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lut <input.lut>",
		Short: "Display a color lookup table",
		Args:  cobra.ExactArgs(1),
		RunE:  runLut,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

func runLut(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	codePage, _ := cmd.Flags().GetInt("codepage")

	if fsaverage.FormatOf(args[0]) != fsaverage.FormatLUT {
		return fmt.Errorf("%s: not a color table", args[0])
	}
	s := fsaverage.New(surfaceOptions(cmd)...)
	if err := s.Load(args[0]); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if jsonOutput {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(s.LUT)
	}

	fmt.Fprintf(w, "Color table: %s (%s)\n", args[0], text.CodePageName(codePage))
	fmt.Fprintln(w, strings.Repeat("=", 50))
	for _, e := range s.LUT {
		fmt.Fprintf(w, "  %3d %3d %3d %3d  %s\n", e.R, e.G, e.B, e.A, e.Name)
	}
	fmt.Fprintf(w, "\n%d entries\n", len(s.LUT))
	return nil
}

// version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "fsaverage version %s\n", version)
			fmt.Fprintf(w, "commit: %s\n", commit)
			fmt.Fprintf(w, "built: %s\n", date)
		},
	}
}
