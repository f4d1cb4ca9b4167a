package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
)

// PuzzleServer imitates the puzzle site for a single year and counts
// every request it serves.
type PuzzleServer struct {
	*httptest.Server

	Year    int
	Session string

	mutex        sync.Mutex
	promptCalls  map[int]int
	inputCalls   map[int]int
	promptStatus map[int]int
	inputStatus  map[int]int
	partOneOnly  map[int]bool
}

// NewPuzzleServer starts a server that is closed when the test ends.
func NewPuzzleServer(t testing.TB, year int, session string) *PuzzleServer {
	s := &PuzzleServer{
		Year:         year,
		Session:      session,
		promptCalls:  map[int]int{},
		inputCalls:   map[int]int{},
		promptStatus: map[int]int{},
		inputStatus:  map[int]int{},
		partOneOnly:  map[int]bool{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{year}/day/{day}", func(w http.ResponseWriter, r *http.Request) {
		s.serve(t, w, r, false)
	})
	mux.HandleFunc("GET /{year}/day/{day}/input", func(w http.ResponseWriter, r *http.Request) {
		s.serve(t, w, r, true)
	})
	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Server.Close)

	return s
}

// FailPrompt makes the prompt of `day` answer with `status`.
func (s *PuzzleServer) FailPrompt(day, status int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.promptStatus[day] = status
}

// FailInput makes the input of `day` answer with `status`.
func (s *PuzzleServer) FailInput(day, status int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.inputStatus[day] = status
}

// HidePartTwo serves the prompt of `day` as if part one was still unsolved.
func (s *PuzzleServer) HidePartTwo(day int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.partOneOnly[day] = true
}

func (s *PuzzleServer) PromptCalls(day int) int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.promptCalls[day]
}

func (s *PuzzleServer) InputCalls(day int) int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.inputCalls[day]
}

func (s *PuzzleServer) TotalCalls() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	total := 0
	for _, n := range s.promptCalls {
		total += n
	}
	for _, n := range s.inputCalls {
		total += n
	}
	return total
}

func (s *PuzzleServer) serve(t testing.TB, w http.ResponseWriter, r *http.Request, input bool) {
	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil || year != s.Year {
		t.Errorf("unexpected year in %s", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		return
	}
	day, err := strconv.Atoi(r.PathValue("day"))
	if err != nil || day < 1 || day > 25 {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	s.mutex.Lock()
	var status int
	hidden := s.partOneOnly[day]
	if input {
		s.inputCalls[day]++
		status = s.inputStatus[day]
	} else {
		s.promptCalls[day]++
		status = s.promptStatus[day]
	}
	s.mutex.Unlock()

	if r.Header.Get("Cookie") != fmt.Sprintf("session=%s;", s.Session) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("Puzzle inputs differ by user.  Please log in to get your puzzle input.\n"))
		return
	}
	if status != 0 {
		w.WriteHeader(status)
		return
	}

	if input {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte(InputBody(day)))
		return
	}
	w.Header().Set("Content-Type", "text/html")
	w.Write([]byte(PromptPage(day, !hidden)))
}

// PromptPage renders a puzzle page with one <article> per revealed part.
func PromptPage(day int, partTwo bool) string {
	page := fmt.Sprintf(`<!DOCTYPE html>
<html lang="en-us">
<head><title>Day %[1]d - Advent of Code</title></head>
<body>
<header><h1><a href="/">Advent of Code</a></h1></header>
<main>
<article class="day-desc"><h2>--- Day %[1]d ---</h2><p>Part one of day %[1]d.</p></article>
`, day)
	if partTwo {
		page += fmt.Sprintf(`<p>Your puzzle answer was <code>%[1]d</code>.</p>
<article class="day-desc"><h2 id="part2">--- Part Two ---</h2><p>Part two of day %[1]d.</p></article>
`, day)
	}
	return page + "</main>\n</body>\n</html>\n"
}

// PromptText is what PromptPage looks like once its articles are extracted.
func PromptText(day int, partTwo bool) string {
	text := fmt.Sprintf(`<h2>--- Day %[1]d ---</h2><p>Part one of day %[1]d.</p>`, day)
	if partTwo {
		text += fmt.Sprintf("\n"+`<h2 id="part2">--- Part Two ---</h2><p>Part two of day %[1]d.</p>`, day)
	}
	return text
}

// InputBody is the puzzle input served for `day`, trailing newline included.
func InputBody(day int) string {
	return fmt.Sprintf("%d\n%d\n%d\n", day, day*10, day*100)
}
