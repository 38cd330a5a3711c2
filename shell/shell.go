// Package shell implements the interactive menu to record and chart projects.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/etnz/greenstar"
	"github.com/etnz/greenstar/chart"
	"github.com/etnz/greenstar/date"
)

// Shell is the interactive menu loop. It owns the store it edits.
type Shell struct {
	w       io.Writer
	r       *bufio.Reader
	store   *greenstar.Store
	display chart.Displayer

	// ChartDir is the folder where charts are saved, the current folder by default.
	ChartDir string
}

// New creates a new Shell reading answers from r and writing to w.
// Charts are handed to display once rendered.
func New(w io.Writer, r io.Reader, store *greenstar.Store, display chart.Displayer) *Shell {
	return &Shell{
		w:       w,
		r:       bufio.NewReader(r),
		store:   store,
		display: display,
	}
}

// Store returns the store edited by the shell.
func (s *Shell) Store() *greenstar.Store { return s.store }

const mainMenu = `1. Add new project
2. Visualize projects
3. Save projects to file
4. Load projects from file
5. Exit`

// Run loops over the main menu until the user exits or the input ends.
func (s *Shell) Run() error {
	for {
		fmt.Fprintln(s.w, mainMenu)
		choice, err := s.ask("Enter your choice: ")
		if err != nil {
			return s.end(err)
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = s.addProject()
		case "2":
			err = s.visualize()
		case "3":
			err = s.save()
		case "4":
			err = s.load()
		case "5":
			fmt.Fprintln(s.w, "Exiting...")
			return nil
		default:
			fmt.Fprintln(s.w, "Invalid choice. Please try again.")
		}
		if err != nil {
			return s.end(err)
		}
	}
}

// end turns the end of input into a clean exit.
func (s *Shell) end(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(s.w)
		log.Println("input closed, leaving the shell")
		return nil
	}
	return err
}

// ask prints the prompt and returns the next line of input, without its line ending.
func (s *Shell) ask(prompt string) (string, error) {
	fmt.Fprint(s.w, prompt)
	line, err := s.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// askDate asks until the answer is a valid dd/mm/yyyy date.
func (s *Shell) askDate(prompt string) (string, error) {
	for {
		answer, err := s.ask(prompt)
		if err != nil {
			return "", err
		}
		if date.Valid(answer) {
			return answer, nil
		}
		fmt.Fprintln(s.w, "Please enter date in the valid format dd/mm/yyyy:")
	}
}

// askRating asks until the answer is a valid rating.
func (s *Shell) askRating() (greenstar.Rating, error) {
	for {
		answer, err := s.ask("Enter rating (or 'NA' if not available): ")
		if err != nil {
			return greenstar.Rating{}, err
		}
		if rating, err := greenstar.ParseRating(answer); err == nil {
			return rating, nil
		}
		fmt.Fprintln(s.w, "Please enter a valid integer as rating! ")
	}
}

func (s *Shell) addProject() error {
	name, err := s.ask("Enter project name: ")
	if err != nil {
		return err
	}
	location, err := s.ask("Enter project location: ")
	if err != nil {
		return err
	}
	registered, err := s.askDate("Enter registered date (dd/mm/yyyy): ")
	if err != nil {
		return err
	}
	certified, err := s.askDate("Enter certified date (dd/mm/yyyy): ")
	if err != nil {
		return err
	}
	ratingTool, err := s.ask("Enter rating tool: ")
	if err != nil {
		return err
	}
	rating, err := s.askRating()
	if err != nil {
		return err
	}

	s.store.Add(greenstar.NewProject(name, location, registered, certified, ratingTool, rating))
	fmt.Fprintln(s.w, "Project added successfully!")
	return nil
}

func (s *Shell) visualize() error {
	fmt.Fprintln(s.w, "Select visualization type:")
	kinds := chart.Kinds()
	for i, k := range kinds {
		fmt.Fprintf(s.w, "%d. %s\n", i+1, k.Label())
	}
	fmt.Fprintf(s.w, "%d. Exit\n", len(kinds)+1)

	answer, err := s.ask("Enter the number corresponding to your choice: ")
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	switch {
	case err != nil || n < 1 || n > len(kinds)+1:
		fmt.Fprintln(s.w, "Invalid choice")
		return nil
	case n == len(kinds)+1:
		return nil
	}

	kind := kinds[n-1]
	c := chart.New(kind, s.store.Projects(), chart.Options{
		Title:    kind.Title(),
		SavePath: filepath.Join(s.ChartDir, kind.File()),
	})
	if err := c.Render(s.w, s.display); err != nil {
		fmt.Fprintf(s.w, "Error: %v\n", err)
	}
	return nil
}

func (s *Shell) save() error {
	path, err := s.ask("Enter file path to save projects: ")
	if err != nil {
		return err
	}
	if err := s.store.Snapshot(path); err != nil {
		fmt.Fprintf(s.w, "Error: %v\n", err)
		return nil
	}
	fmt.Fprintln(s.w, "Projects saved successfully!")
	return nil
}

func (s *Shell) load() error {
	path, err := s.ask("Enter file path to load projects: ")
	if err != nil {
		return err
	}
	err = s.store.Restore(path)
	switch {
	case err == nil:
		fmt.Fprintln(s.w, "Project loaded successfully!")
	case errors.Is(err, greenstar.ErrInvalidSnapshotPath):
		log.Println(err)
		fmt.Fprintf(s.w, "Error: Please provide a valid %s file path.\n", greenstar.SnapshotExt)
	case errors.Is(err, greenstar.ErrCorruptSnapshot):
		log.Println(err)
		fmt.Fprintln(s.w, "Error: Unable to deserialize data from file. The file might be corrupted or empty.")
	default:
		fmt.Fprintf(s.w, "Error: %v\n", err)
	}
	return nil
}
