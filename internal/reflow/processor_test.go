package reflow

import "testing"

func TestProcessLine_ProseAccumulation(t *testing.T) {
	acc, rest, groups, ready, protect := processLine("", "network consisting of a cascade\n", 0)
	if acc != "network consisting of a cascade" {
		t.Errorf("acc = %q", acc)
	}
	if rest != "" || groups != 0 || ready || protect {
		t.Errorf("rest=%q groups=%d ready=%v protect=%v, want consumed quiet state", rest, groups, ready, protect)
	}
}

func TestProcessLine_AppendsWithSeparatingSpace(t *testing.T) {
	acc, _, _, _, _ := processLine("In this paper, we consider a", "network of cavities\n", 0)
	want := "In this paper, we consider a network of cavities"
	if acc != want {
		t.Errorf("acc = %q, want %q", acc, want)
	}
}

func TestProcessLine_SentenceBoundaryLeavesRemainder(t *testing.T) {
	acc, rest, _, ready, protect := processLine("", "of cavities. The network is depicted\n", 0)
	if acc != "of cavities." {
		t.Errorf("acc = %q", acc)
	}
	if rest != "The network is depicted" {
		t.Errorf("rest = %q", rest)
	}
	if !ready || protect {
		t.Errorf("ready=%v protect=%v, want flush without protection", ready, protect)
	}
}

func TestProcessLine_BoundaryAtEndOfLine(t *testing.T) {
	acc, rest, _, ready, _ := processLine("", "in \\Fig{network}.\n", 0)
	if acc != "in \\Fig{network}." || rest != "" {
		t.Errorf("acc=%q rest=%q", acc, rest)
	}
	if !ready {
		t.Error("line ending in a full stop must trigger a flush")
	}
}

func TestProcessLine_ProtectedAbsorbedVerbatim(t *testing.T) {
	acc, rest, groups, ready, protect := processLine("", "  % a comment with indentation\n", 0)
	if acc != "  % a comment with indentation" {
		t.Errorf("acc = %q, want verbatim line with indentation", acc)
	}
	if rest != "" || groups != 0 {
		t.Errorf("rest=%q groups=%d", rest, groups)
	}
	if !ready || !protect {
		t.Errorf("ready=%v protect=%v, want protected flush", ready, protect)
	}
}

func TestProcessLine_ProtectedForcesFlushOfPendingProse(t *testing.T) {
	line := "\\section{Model}\n"
	acc, rest, _, ready, protect := processLine("pending prose", line, 0)
	if acc != "pending prose" {
		t.Errorf("acc = %q, pending prose must be flushed untouched", acc)
	}
	if rest != line {
		t.Errorf("rest = %q, protected line must stay unconsumed for re-processing", rest)
	}
	if !ready {
		t.Error("pending prose must be force-flushed")
	}
	if protect {
		t.Error("the flushed accumulator is prose, not the protected line")
	}
}

func TestProcessLine_GroupOpenAndClose(t *testing.T) {
	acc, rest, groups, ready, protect := processLine("", "\\begin{equation}\n", 0)
	if acc != "\\begin{equation}" || rest != "" {
		t.Errorf("acc=%q rest=%q", acc, rest)
	}
	if groups != 1 || !ready || !protect {
		t.Errorf("groups=%d ready=%v protect=%v", groups, ready, protect)
	}

	// Lines inside the group are absorbed verbatim, periods and all.
	acc, _, groups, ready, protect = processLine("", "  x = y. z = w.\n", 1)
	if acc != "  x = y. z = w." {
		t.Errorf("acc = %q, want opaque verbatim line", acc)
	}
	if groups != 1 || !ready || !protect {
		t.Errorf("groups=%d ready=%v protect=%v", groups, ready, protect)
	}

	_, _, groups, _, _ = processLine("", "\\end{equation}\n", 1)
	if groups != 0 {
		t.Errorf("groups = %d after matching end, want 0", groups)
	}
}

func TestProcessLine_NegativeTallyIsTolerated(t *testing.T) {
	// A stray \end drives the tally negative; subsequent lines are treated
	// as group content rather than rejected.
	_, _, groups, _, _ := processLine("", "\\end{align}\n", 0)
	if groups != -1 {
		t.Fatalf("groups = %d, want -1", groups)
	}
	acc, _, groups, ready, protect := processLine("", "ordinary prose. with periods.\n", groups)
	if acc != "ordinary prose. with periods." {
		t.Errorf("acc = %q, want verbatim absorption", acc)
	}
	if groups != -1 || !ready || !protect {
		t.Errorf("groups=%d ready=%v protect=%v", groups, ready, protect)
	}
}

func TestProcessLine_BalancedGroupOnOneLineIsMergeable(t *testing.T) {
	// A line with matching \begin and \end is plain prose for the
	// accumulator: generic markers only protect while unbalanced.
	acc, _, groups, _, protect := processLine("", "\\begin{x} y \\end{x}\n", 0)
	if acc != "\\begin{x} y \\end{x}" {
		t.Errorf("acc = %q", acc)
	}
	if groups != 0 || protect {
		t.Errorf("groups=%d protect=%v, want mergeable prose", groups, protect)
	}
}
