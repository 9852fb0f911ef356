package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceLA/pkg/action"
	"github.com/OpenTraceLab/OpenTraceLA/pkg/timeline"
	"github.com/OpenTraceLab/OpenTraceLA/pkg/view"
)

var (
	rulerWidth       float64
	rulerHeight      float64
	rulerRate        float64
	rulerSamples     int64
	rulerZoom        float64
	rulerScroll      float64
	rulerTrigger     string
	rulerCursors     []string
	rulerDo          []string
	rulerTheme       string
	rulerMinorLabels bool
	rulerNoTiming    bool
	rulerAllTicks    bool
	rulerOps         bool
)

var rulerCmd = &cobra.Command{
	Use:   "ruler",
	Short: "Paint the time ruler once and print what was drawn",
	Long: `Build a capture view from the config file and flags, paint its time
ruler once and print the ticks, the cursor flags and their placement.

Times accept an optional unit (s, ms, us, µs, ns, ps, fs). The trigger is
measured from the start of the capture, cursors from the trigger. Without
timing data bare numbers count samples.

Examples:
  otla ruler --rate 1e6 --samples 100000 --trigger 250us
  otla ruler --rate 1e6 --cursor A=100us --cursor B=105us
  otla ruler --no-timing --samples 5000 --do zoom-fit`,
	Args: cobra.NoArgs,
	RunE: runRuler,
}

func init() {
	f := rulerCmd.Flags()
	f.Float64Var(&rulerWidth, "width", 800, "visible width in pixels")
	f.Float64Var(&rulerHeight, "height", 40, "ruler height in pixels")
	f.Float64Var(&rulerRate, "rate", -1, "sample rate in Hz (default from config)")
	f.Int64Var(&rulerSamples, "samples", 0, "samples in the capture (default from config)")
	f.Float64Var(&rulerZoom, "zoom", 0, "zoom in pixels per sample (default 1)")
	f.Float64Var(&rulerScroll, "scroll", 0, "scroll offset in pixels")
	f.StringVar(&rulerTrigger, "trigger", "", "trigger time from capture start (default from config)")
	f.StringArrayVar(&rulerCursors, "cursor", nil, "cursor as [label=]time from the trigger, repeatable")
	f.StringArrayVar(&rulerDo, "do", nil, "action to run before painting, repeatable (see otla actions)")
	f.StringVar(&rulerTheme, "theme", "", "colour theme (Dark, Light, Nord)")
	f.BoolVar(&rulerMinorLabels, "minor-labels", false, "label minor ticks")
	f.BoolVar(&rulerNoTiming, "no-timing", false, "treat the capture as uncalibrated")
	f.BoolVar(&rulerAllTicks, "all-ticks", false, "list unlabelled ticks too")
	f.BoolVar(&rulerOps, "ops", false, "list every drawing primitive")
	rootCmd.AddCommand(rulerCmd)
}

func runRuler(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if rulerRate >= 0 {
		cfg.Capture.SampleRate = rulerRate
	}
	if rulerNoTiming {
		cfg.Capture.SampleRate = 0
	}
	if rulerSamples > 0 {
		cfg.Capture.Samples = rulerSamples
	}
	if rulerTheme != "" {
		cfg.Ruler.Theme = rulerTheme
	}
	if rulerMinorLabels {
		cfg.Ruler.MinorLabels = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if len(rulerCursors) > timeline.MaxCursors {
		return fmt.Errorf("at most %d cursors, got %d", timeline.MaxCursors, len(rulerCursors))
	}

	m := cfg.NewModel()
	m.SetSize(rulerWidth, rulerHeight)
	if rulerTrigger != "" {
		t, err := timeline.ParseTime(rulerTrigger)
		if err != nil {
			return fmt.Errorf("--trigger: %w", err)
		}
		m.TriggerSample = toSamples(m, t)
	}
	if rulerZoom > 0 {
		m.SetZoom(rulerZoom)
	}
	m.ScrollTo(rulerScroll)

	for i, spec := range rulerCursors {
		label, t, err := parseCursor(spec)
		if err != nil {
			return fmt.Errorf("--cursor: %w", err)
		}
		if err := m.SetCursor(i, m.TriggerSample+toSamples(m, t), label); err != nil {
			return err
		}
	}

	reg := action.NewRegistry()
	if err := view.BindActions(reg, m, nil); err != nil {
		return err
	}
	for _, name := range rulerDo {
		if err := reg.DispatchName(cmd.Context(), name); err != nil {
			return err
		}
		logger.Debug("action applied", "name", name, "zoom", m.Zoom(), "scroll", m.ScrollX())
	}

	rec := timeline.NewRecorder()
	timeline.NewRenderer(m, logger).Paint(rec, m.Bounds(), m.VisibleRect())

	vis := m.VisibleRect()
	labels := timeline.CursorLabels(m, vis, rec)
	steps := timeline.PlaceLabels(labels)

	out := cmd.OutOrStdout()
	printSummary(out, m)
	printTicks(out, m, timeline.ComputeTicks(m, vis))
	printFlags(out, labels, steps)
	if rulerOps {
		printOps(out, rec)
	}
	fmt.Fprintln(out, styleDim.Render(fmt.Sprintf("%d primitives: %d lines, %d rects, %d texts",
		len(rec.Ops), len(rec.Filter(timeline.OpLine)), len(rec.Filter(timeline.OpFillRect)), len(rec.Filter(timeline.OpText)))))
	return nil
}

// toSamples converts a time to samples; uncalibrated captures already count
// samples.
func toSamples(m *view.Model, t float64) float64 {
	if m.HasTimingData() {
		return t * m.SampleRate
	}
	return t
}

// parseCursor splits "label=time" or "time".
func parseCursor(spec string) (string, float64, error) {
	label, value, found := strings.Cut(spec, "=")
	if !found {
		label, value = "", spec
	}
	t, err := timeline.ParseTime(value)
	if err != nil {
		return "", 0, err
	}
	return strings.TrimSpace(label), t, nil
}

func printSummary(w io.Writer, m *view.Model) {
	timing := m.HasTimingData()
	scale := timeline.FormatLabel(m.SecondsPerPixel(), 0, 3, timing)
	unit := timeline.FormatLabel(m.UnitOfTime(), 0, 3, timing)
	fmt.Fprintln(w, styleTitle.Render("Ruler"),
		styleDim.Render(fmt.Sprintf("%gx%g px, %s/px, unit %s, zoom %g px/sample, scroll %g px",
			m.VisibleRect().W, m.Height(), scale, unit, m.Zoom(), m.ScrollX())))
	inc := timeline.TickIncrements(m.VisibleRect().W)
	fmt.Fprintln(w, styleDim.Render(fmt.Sprintf("increments: major %d, minor %d, tick %d units",
		inc.Major, inc.Minor, inc.Tick)))
}

func printTicks(w io.Writer, m *view.Model, ticks []timeline.Tick) {
	var rows [][]string
	var trigger []bool
	for _, t := range ticks {
		if t.Label == "" && !rulerAllTicks {
			continue
		}
		tier := t.Tier.String()
		if t.Trigger {
			tier += " trigger"
		}
		rows = append(rows, []string{
			strconv.FormatFloat(t.X-m.ScrollX(), 'f', 1, 64),
			tier,
			timeline.FormatLabel(t.Time, 0, 3, m.HasTimingData()),
			t.Label,
		})
		trigger = append(trigger, t.Trigger)
	}
	fmt.Fprintln(w, styleTitle.Render("Ticks"), styleDim.Render(fmt.Sprintf("(%d of %d)", len(rows), len(ticks))))
	if len(rows) == 0 {
		return
	}
	fmt.Fprintln(w, newTable([]string{"X", "Tier", "Time", "Label"}, rows, func(row int) bool {
		return row >= 0 && row < len(trigger) && trigger[row]
	}).Render())
}

func printFlags(w io.Writer, labels []timeline.CursorLabel, steps int) {
	fmt.Fprintln(w, styleTitle.Render("Cursor flags"), styleDim.Render(fmt.Sprintf("(%d placement steps)", steps)))
	if len(labels) == 0 {
		return
	}
	rows := make([][]string, 0, len(labels))
	for i := range labels {
		l := &labels[i]
		b := l.Bounds
		overlap := ""
		if i > 0 && labels[i-1].Bounds.Intersects(b) {
			overlap = "overlaps"
		}
		rows = append(rows, []string{
			strconv.Itoa(l.Index + 1),
			strconv.FormatFloat(l.X, 'f', 1, 64),
			l.Style().String(),
			l.Text,
			fmt.Sprintf("%.1f..%.1f", b.X, b.Right()),
			overlap,
		})
	}
	fmt.Fprintln(w, newTable([]string{"#", "X", "Style", "Text", "Box", ""}, rows, nil).Render())
}

func printOps(w io.Writer, rec *timeline.Recorder) {
	fmt.Fprintln(w, styleTitle.Render("Primitives"))
	for _, op := range rec.Ops {
		switch op.Kind {
		case timeline.OpFillRect:
			r := op.Rect
			fmt.Fprintf(w, "%-5s %7.1f %7.1f %7.1f %7.1f #%02x%02x%02x\n", op.Kind, r.X, r.Y, r.W, r.H, op.Color.R, op.Color.G, op.Color.B)
		case timeline.OpLine:
			fmt.Fprintf(w, "%-5s %7.1f %7.1f %7.1f %7.1f #%02x%02x%02x\n", op.Kind, op.X1, op.Y1, op.X2, op.Y2, op.Color.R, op.Color.G, op.Color.B)
		default:
			fmt.Fprintf(w, "%-5s %7.1f %7.1f %q %gpt\n", op.Kind, op.X1, op.Y1, op.Text, op.Font.Size)
		}
	}
}
