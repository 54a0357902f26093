// Package menu is the interactive console front end of the route finder.
package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/theoremus-urban-solutions/wmr-route-finder/finder"
	"github.com/theoremus-urban-solutions/wmr-route-finder/formatter"
)

const header = "\nWMR Network Route Finder\n"

const options = "Enter the number associated with your chosen menu option.\n" +
	"1: List all termini in a specified line\n" +
	"2: List all stations along a specified line and their travel time\n" +
	"3: List all lines in the network\n" +
	"4: Find an accessible path between two stations\n" +
	"5: Find all paths between two stations\n" +
	"6: Find the shortest path between two stations\n" +
	"7: Exit this application\n"

// Catalogue lists the West Midlands Railway lines offered to the user.
var Catalogue = []string{
	"Birmingham -- Dorridge -- Leamington Spa",
	"Cross City Line",
	"Birmingham -- Rugby -- Northampton -- London",
	"Nuneaton -- Coventry",
	"Watford -- St Albans Abbey",
	"Bletchley -- Bedford",
	"Crewe -- Stoke -- Stafford -- London",
	"Worcester -- Birmingham",
	"Smethwick Galton Bridge Connections",
	"Birmingham -- Stratford-upon-Avon",
	"Birmingham -- Wolverhampton -- Telford -- Shrewsbury",
	"Birmingham -- Worcester -- Hereford",
	"Birmingham -- Walsall -- Rugeley",
}

func catalogue() string {
	var b strings.Builder
	for i, line := range Catalogue {
		fmt.Fprintf(&b, "\n%c. %s", 'a'+i, line)
	}
	return b.String()
}

type session struct {
	in  *bufio.Scanner
	out io.Writer
	f   *finder.Finder
}

func (s *session) display(text string) {
	fmt.Fprintln(s.out, text)
}

// readLine returns the next trimmed line and false once input is exhausted.
func (s *session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *session) prompt(text string) (string, bool) {
	s.display(text)
	return s.readLine()
}

// Run shows the menu and answers commands read from in until the user exits,
// input ends or ctx is cancelled.
func Run(ctx context.Context, in io.Reader, out io.Writer, f *finder.Finder) error {
	s := &session{in: bufio.NewScanner(in), out: out, f: f}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.display(header)
		s.display(options)
		command, ok := s.readLine()
		if !ok {
			return s.in.Err()
		}
		done, ok := s.handle(command)
		if done {
			return nil
		}
		if !ok {
			return s.in.Err()
		}
	}
}

// handle runs one command. done reports an exit request and ok is false when
// input ran out in the middle of a command.
func (s *session) handle(command string) (done, ok bool) {
	switch command {
	case "1":
		s.display("Lists all termini along a line...")
		s.display("Enter the ID of the required line.")
		route, ok := s.prompt(catalogue())
		if !ok {
			return false, false
		}
		t, found := s.f.ListTermini(route)
		s.display(formatter.TextTermini(route, t, found))
	case "2":
		s.display("Lists all stations along a line...")
		s.display("Enter the ID of the line you'd like to view:")
		route, ok := s.prompt(catalogue())
		if !ok {
			return false, false
		}
		s.display(formatter.TextStations(route, s.f.ListStationsInLine(route)))
	case "3":
		s.display("Lists all lines and their travel time...")
		s.display(formatter.TextAllLines(s.f.ListAllLines()))
	case "4":
		s.display("Finds a path between two stations...")
		from, to, ok := s.stations("Enter the name of the intended start station:", "Enter the name of the intended destination station:")
		if !ok {
			return false, false
		}
		s.display(formatter.TextAccessiblePath(from, to, s.f.FindAccessiblePath(from, to)))
	case "5":
		s.display("Finds all paths between two stations...")
		from, to, ok := s.stations("Enter the name of the start station:", "Enter the name of the destination station:")
		if !ok {
			return false, false
		}
		s.display(formatter.TextAllPaths(from, to, s.f.FindAllPaths(from, to)))
	case "6":
		s.display("Finds the shortest paths between two stations...")
		from, to, ok := s.stations("Enter the name of the start station:", "Enter the name of the destination station:")
		if !ok {
			return false, false
		}
		p, found := s.f.FindShortestPath(from, to)
		s.display(formatter.TextShortestPath(from, to, p, found))
	case "7":
		s.display("Goodbye!")
		return true, true
	default:
		s.display(fmt.Sprintf("Cannot recognise the given command: %s.\n", command))
	}
	return false, true
}

func (s *session) stations(fromPrompt, toPrompt string) (from, to string, ok bool) {
	if from, ok = s.prompt(fromPrompt); !ok {
		return "", "", false
	}
	if to, ok = s.prompt(toPrompt); !ok {
		return "", "", false
	}
	return from, to, true
}
