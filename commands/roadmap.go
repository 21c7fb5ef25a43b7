package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/penwyp/go-course-roadmap/internal/application/roadmap"
	"github.com/penwyp/go-course-roadmap/internal/core/model"
	"github.com/penwyp/go-course-roadmap/internal/presentation/layout"
	"github.com/penwyp/go-course-roadmap/internal/util"
	"github.com/spf13/cobra"
)

const roadmapHelp = `Commands:
  title <text>          rename the roadmap
  add <title> [| description [| month [| year]]]
                        append a milestone
  remove <number|id>    delete a milestone
  list                  list milestones with their ids
  show                  draw the timeline
  save                  save and switch to view mode
  edit                  switch back to edit mode
  help                  show this help
  quit                  leave`

type roadmapOptions struct {
	saveDelay   time.Duration
	layoutStyle string
	empty       bool
}

func newRoadmapCmd(a *app) *cobra.Command {
	opts := &roadmapOptions{}

	cmd := &cobra.Command{
		Use:   "roadmap",
		Short: "Build a learning roadmap interactively",
		Long: `Starts a line-oriented session for editing a milestone roadmap. Commands are read
from standard input, so a roadmap can also be scripted:

  printf 'add Learn Go | tour | May | 2025\nsave\n' | go-course-roadmap roadmap

` + roadmapHelp,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			delay := a.cfg.SaveDelay
			if cmd.Flags().Changed("save-delay") {
				delay = opts.saveDelay
			}
			if delay < 0 {
				return fmt.Errorf("save delay must not be negative")
			}

			out := cmd.OutOrStdout()
			storeOpts := []roadmap.Option{
				roadmap.WithPersister(roadmap.NewSimulatedPersister(delay)),
				roadmap.WithNotifier(printNotifier(out)),
			}
			if opts.empty {
				storeOpts = append(storeOpts, roadmap.WithInitialState(model.DefaultRoadmapTitle, nil))
			}

			s := &roadmapSession{
				store:       roadmap.NewStore(storeOpts...),
				out:         out,
				layoutStyle: opts.layoutStyle,
				width:       layout.Sizer{}.WidthFor(out),
			}
			return s.run(cmd.Context(), cmd.InOrStdin())
		},
	}

	cmd.Flags().DurationVar(&opts.saveDelay, "save-delay", 0,
		"Simulated save time (overrides COURSE_ROADMAP_SAVE_DELAY)")
	cmd.Flags().StringVar(&opts.layoutStyle, "layout", layout.StrategyAuto,
		"Timeline layout (auto, horizontal, vertical)")
	cmd.Flags().BoolVar(&opts.empty, "empty", false,
		"Start without the sample milestones")

	return cmd
}

func printNotifier(out io.Writer) roadmap.Notifier {
	return roadmap.NotifierFunc(func(n roadmap.Notice) {
		mark := "✓"
		if n.Destructive {
			mark = "!"
		}
		fmt.Fprintf(out, "%s %s %s\n", mark, n.Title, n.Description)
	})
}

type roadmapSession struct {
	store       *roadmap.Store
	out         io.Writer
	layoutStyle string
	width       int
}

func (s *roadmapSession) run(ctx context.Context, in io.Reader) error {
	s.printf("%s\n", roadmapHelp)
	if err := s.show(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		s.printf("%s> ", s.store.Mode())
		if !scanner.Scan() {
			s.printf("\n")
			return scanner.Err()
		}

		quit, err := s.handle(ctx, scanner.Text())
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// handle runs one input line. Only output failures are returned as errors;
// mistakes in the input are reported to the user and the session goes on.
func (s *roadmapSession) handle(ctx context.Context, line string) (bool, error) {
	verb, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(verb) {
	case "":
		return false, nil
	case "quit", "exit", "q":
		return true, nil
	case "help", "?":
		s.printf("%s\n", roadmapHelp)
	case "list", "ls":
		s.list()
	case "show":
		return false, s.show()
	case "title":
		if s.readOnly() {
			return false, nil
		}
		s.store.SetTitle(rest)
		s.printf("Title set to %q\n", s.store.State().Title)
	case "add":
		if s.readOnly() {
			return false, nil
		}
		s.add(rest)
	case "remove", "rm":
		if s.readOnly() {
			return false, nil
		}
		s.remove(rest)
	case "save":
		s.save(ctx)
	case "edit":
		_ = s.store.SetMode(model.ModeEdit)
		s.printf("Editing roadmap.\n")
	case "view":
		if err := s.store.SetMode(model.ModeView); err != nil {
			s.printf("Save the roadmap to switch to view mode.\n")
		}
	default:
		s.printf("Unknown command %q. Type 'help' for the list of commands.\n", verb)
	}
	return false, nil
}

func (s *roadmapSession) readOnly() bool {
	if s.store.Mode() == model.ModeView {
		s.printf("%s\n", util.FormatWarning("The roadmap is in view mode. Type 'edit' to make changes."))
		return true
	}
	return false
}

func (s *roadmapSession) add(args string) {
	parts := strings.Split(args, "|")
	for len(parts) < 4 {
		parts = append(parts, "")
	}

	item, err := s.store.AddItem(parts[0], parts[1], parts[2], parts[3])
	if err != nil {
		var verr *roadmap.ValidationError
		if errors.As(err, &verr) {
			s.printf("%s\n", verr.Message)
			return
		}
		s.printf("Could not add milestone: %v\n", err)
		return
	}
	util.LogDebugf("Session added milestone %s", item.ID)
}

func (s *roadmapSession) remove(arg string) {
	if arg == "" {
		s.printf("Usage: remove <number|id>\n")
		return
	}

	id := arg
	if n, err := strconv.Atoi(arg); err == nil {
		items := s.store.State().Items
		if n < 1 || n > len(items) {
			s.printf("No milestone number %d.\n", n)
			return
		}
		id = items[n-1].ID
	}
	if !s.store.RemoveItem(id) {
		s.printf("No milestone with id %q.\n", id)
	}
}

func (s *roadmapSession) save(ctx context.Context) {
	s.printf("Saving...\n")
	err := s.store.Save(ctx)
	switch {
	case err == nil:
		_ = s.show()
	case errors.Is(err, roadmap.ErrSaveInProgress):
		s.printf("A save is already running.\n")
	default:
		// the notifier has already told the user
		util.LogDebugf("Save failed: %v", err)
	}
}

func (s *roadmapSession) list() {
	state := s.store.State()
	if len(state.Items) == 0 {
		s.printf("No milestones yet.\n")
		return
	}
	s.printf("%s\n", util.FormatDataTitle(state.Title+" · "+util.Pluralize(len(state.Items), "milestone")))
	sizer := layout.Sizer{}
	for i, item := range state.Items {
		line := fmt.Sprintf("%2d. %s  %s %s  [%s]", i+1, item.Title, item.Month, item.Year, item.ID)
		s.printf("%s\n", sizer.Fit(line, s.width))
	}
}

func (s *roadmapSession) show() error {
	view := layout.NewRoadmapView(s.store.State())
	strategy := layout.GetTimelineStrategy(s.layoutStyle, view, s.width)
	return strategy.Render(s.out, view, s.width)
}

func (s *roadmapSession) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}
