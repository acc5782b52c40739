package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/tally/internal/habit"
	"github.com/julianstephens/tally/internal/logger"
	"github.com/julianstephens/tally/internal/validation"
)

type AddCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *AddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	h, err := ctx.Service.Repo().Create(c.Name)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s\n", h.Name)
	return nil
}

type ListCmd struct {
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *ListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	views, err := ctx.Service.Repo().ListForDate(date)
	if err != nil {
		return err
	}

	if len(views) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	fmt.Printf("Habits for %s:\n\n", date.Format("2006-01-02"))
	for _, v := range views {
		status := "[ ]"
		if v.Completed {
			status = "[x]"
		}
		fmt.Printf("%s %s (streak %d)\n", status, v.Name, v.Streak)
	}

	stats := habit.Stats(views)
	fmt.Printf("\nCompleted: %d/%d (%.0f%%)\n", stats.Completed, stats.Total, stats.Percent*100)
	return nil
}

type ToggleCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *ToggleCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	h, err := ctx.Service.Repo().GetByName(c.Name)
	if err != nil {
		if errors.Is(err, habit.ErrNotFound) {
			return fmt.Errorf("habit %q not found", c.Name)
		}
		return err
	}

	view, err := ctx.Service.Toggle(h.ID, date)
	if err != nil {
		return err
	}

	state := "incomplete"
	if view.Completed {
		state = "complete"
	}
	fmt.Printf("Marked habit %q %s for %s (streak %d)\n",
		view.Name, state, date.Format("2006-01-02"), view.Streak)
	return nil
}

type DeleteCmd struct {
	Name string `arg:"" help:"Habit name to delete."`
}

func (c *DeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	h, err := ctx.Service.Repo().GetByName(c.Name)
	if err != nil {
		if errors.Is(err, habit.ErrNotFound) {
			// Delete is idempotent; an unknown habit is not an error.
			fmt.Printf("No habit named %q.\n", c.Name)
			return nil
		}
		return err
	}

	if err := ctx.Service.Repo().Delete(h.ID); err != nil {
		return err
	}

	logger.Info("Deleted habit", "id", h.ID, "name", h.Name)
	fmt.Printf("Deleted habit: %s\n", h.Name)
	return nil
}

type LogCmd struct {
	Days  int    `help:"Number of days to show." default:"14"`
	Habit string `help:"Show log for specific habit only."`
}

func (c *LogCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	if c.Habit != "" {
		found := false
		for _, h := range habits {
			if h.Name == c.Habit {
				habits = habits[:0]
				habits = append(habits, h)
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("habit %q not found", c.Habit)
		}
	}

	endDay := time.Now()
	startDay := endDay.AddDate(0, 0, -(c.Days - 1))

	fmt.Printf("Habit log (last %d days):\n\n", c.Days)

	const maxNameLen = 20
	fmt.Print("Habit               ")
	for i := 0; i < c.Days; i++ {
		fmt.Printf(" %5s", startDay.AddDate(0, 0, i).Format("01/02"))
	}
	fmt.Println()

	fmt.Print(strings.Repeat("-", maxNameLen))
	fmt.Println(strings.Repeat("------", c.Days))

	for _, h := range habits {
		name := h.Name
		if len(name) > maxNameLen {
			name = name[:maxNameLen-3] + "..."
		} else {
			name = name + strings.Repeat(" ", maxNameLen-len(name))
		}
		fmt.Print(name)

		records, err := ctx.Store.GetRecordsForHabit(h.ID)
		if err != nil {
			return err
		}

		completedDays := make(map[string]bool)
		for _, r := range records {
			if r.Completed && len(r.Date) >= 10 {
				completedDays[r.Date[:10]] = true
			}
		}

		for i := 0; i < c.Days; i++ {
			day := startDay.AddDate(0, 0, i).Format("2006-01-02")
			if completedDays[day] {
				fmt.Print("  x   ")
			} else {
				fmt.Print("  .   ")
			}
		}
		fmt.Println()
	}

	return nil
}

func resolveDate(arg string) (time.Time, error) {
	if arg == "" {
		return time.Now(), nil
	}
	return validation.Day(arg)
}
