package tracefile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Totals are the coverage counters of a tracefile, summed over every record.
type Totals struct {
	Files          int
	LinesFound     int
	LinesHit       int
	FunctionsFound int
	FunctionsHit   int
	BranchesFound  int
	BranchesHit    int
}

// LinePercent returns the line coverage in percent, 0 when no line is instrumented.
func (t Totals) LinePercent() float64 {
	return percent(t.LinesHit, t.LinesFound)
}

// FunctionPercent returns the function coverage in percent.
func (t Totals) FunctionPercent() float64 {
	return percent(t.FunctionsHit, t.FunctionsFound)
}

// BranchPercent returns the branch coverage in percent.
func (t Totals) BranchPercent() float64 {
	return percent(t.BranchesHit, t.BranchesFound)
}

func percent(hit, found int) float64 {
	if found == 0 {
		return 0
	}
	return float64(hit) / float64(found) * 100
}

// record holds the counters of one SF..end_of_record section. Explicit summary
// lines win over the counts derived from DA, FNDA and BRDA lines.
type record struct {
	lf, lh, fnf, fnh, brf, brh   int
	hasLF, hasLH, hasFNF, hasFNH bool
	hasBRF, hasBRH               bool
	daFound, daHit               int
	fndaFound, fndaHit           int
	brdaFound, brdaHit           int
}

func (r *record) addTo(t *Totals) {
	t.Files++
	t.LinesFound += pick(r.hasLF, r.lf, r.daFound)
	t.LinesHit += pick(r.hasLH, r.lh, r.daHit)
	t.FunctionsFound += pick(r.hasFNF, r.fnf, r.fndaFound)
	t.FunctionsHit += pick(r.hasFNH, r.fnh, r.fndaHit)
	t.BranchesFound += pick(r.hasBRF, r.brf, r.brdaFound)
	t.BranchesHit += pick(r.hasBRH, r.brh, r.brdaHit)
}

func pick(explicit bool, value, derived int) int {
	if explicit {
		return value
	}
	return derived
}

// ParseFile reads the totals of the tracefile at path.
func ParseFile(path string) (Totals, error) {
	f, err := os.Open(path)
	if err != nil {
		return Totals{}, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads the totals of an lcov tracefile. Unknown record types are ignored.
func Parse(r io.Reader) (Totals, error) {
	var (
		totals  Totals
		current *record
		lineNo  int
	)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "end_of_record" {
			if current != nil {
				current.addTo(&totals)
				current = nil
			}
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		if key == "SF" {
			// an unterminated record is closed by the next one
			if current != nil {
				current.addTo(&totals)
			}
			current = &record{}
			continue
		}
		if current == nil {
			continue
		}
		if err := current.apply(key, value); err != nil {
			return Totals{}, fmt.Errorf("tracefile line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return Totals{}, err
	}
	// a trailing record without end_of_record still counts
	if current != nil {
		current.addTo(&totals)
	}
	return totals, nil
}

func (r *record) apply(key, value string) error {
	var err error
	switch key {
	case "LF":
		r.lf, err = strconv.Atoi(value)
		r.hasLF = true
	case "LH":
		r.lh, err = strconv.Atoi(value)
		r.hasLH = true
	case "FNF":
		r.fnf, err = strconv.Atoi(value)
		r.hasFNF = true
	case "FNH":
		r.fnh, err = strconv.Atoi(value)
		r.hasFNH = true
	case "BRF":
		r.brf, err = strconv.Atoi(value)
		r.hasBRF = true
	case "BRH":
		r.brh, err = strconv.Atoi(value)
		r.hasBRH = true
	case "DA":
		// DA:<line>,<count>[,<checksum>]
		fields := strings.Split(value, ",")
		if len(fields) < 2 {
			return fmt.Errorf("malformed DA record %q", value)
		}
		r.daFound++
		if hit(fields[1]) {
			r.daHit++
		}
	case "FNDA":
		// FNDA:<count>,<name>
		count, _, _ := strings.Cut(value, ",")
		r.fndaFound++
		if hit(count) {
			r.fndaHit++
		}
	case "BRDA":
		// BRDA:<line>,<block>,<branch>,<taken>
		fields := strings.Split(value, ",")
		if len(fields) < 4 {
			return fmt.Errorf("malformed BRDA record %q", value)
		}
		r.brdaFound++
		if hit(fields[3]) {
			r.brdaHit++
		}
	}
	return err
}

// hit reports whether an execution count is positive. "-" marks a branch
// that was never evaluated.
func hit(count string) bool {
	n, err := strconv.ParseFloat(count, 64)
	return err == nil && n > 0
}
