package machine_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/tmsim/internal/machine"
)

func isPalindrome(s string) bool {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		if s[i] != s[j] {
			return false
		}
	}
	return true
}

// allStrings enumerates every string over {a, b} up to maxLen.
func allStrings(maxLen int) []string {
	out := []string{""}
	frontier := []string{""}
	for l := 0; l < maxLen; l++ {
		next := make([]string, 0, 2*len(frontier))
		for _, s := range frontier {
			next = append(next, s+"a", s+"b")
		}
		out = append(out, next...)
		frontier = next
	}
	return out
}

func run(input string) *machine.Result {
	GinkgoHelper()
	m, err := machine.New(input)
	Expect(err).NotTo(HaveOccurred())
	res, err := m.Run(context.Background(), 0)
	Expect(err).NotTo(HaveOccurred(), "input %q", input)
	return res
}

var _ = Describe("palindrome decision", func() {
	It("accepts exactly the palindromes up to length 8", func() {
		for _, s := range allStrings(8) {
			res := run(s)
			if isPalindrome(s) {
				Expect(res.Verdict).To(Equal(machine.VerdictAccept), "input %q", s)
				Expect(res.FinalTape).To(Equal("YES"), "input %q", s)
			} else {
				Expect(res.Verdict).To(Equal(machine.VerdictReject), "input %q", s)
				Expect(res.FinalTape).To(HavePrefix("NO"), "input %q", s)
			}
		}
	})

	It("halts well inside the quadratic bound", func() {
		for _, s := range allStrings(8) {
			res := run(s)
			n := len(s)
			Expect(res.Steps).To(BeNumerically("<=", 4*n*n+60), "input %q", s)
		}
	})

	It("produces identical traces across repeated runs", func() {
		for _, s := range []string{"", "a", "ab", "abba", "aabab", "bbabb"} {
			Expect(run(s).Trace).To(Equal(run(s).Trace), "input %q", s)
		}
	})

	It("replays every trace to the directly computed tape", func() {
		for _, s := range allStrings(6) {
			res := run(s)
			tape, err := machine.Replay(s, res.Trace)
			Expect(err).NotTo(HaveOccurred(), "input %q", s)
			Expect(tape).To(Equal(res.FinalTape), "input %q", s)
		}
	})

	It("numbers steps consecutively and chains positions", func() {
		res := run("aabbaa")
		pos := 0
		for i, rec := range res.Trace {
			Expect(rec.Step).To(Equal(i))
			Expect(rec.Position).To(Equal(pos))
			switch rec.Move {
			case machine.MoveLeft:
				pos--
			case machine.MoveRight:
				pos++
			}
		}
		Expect(res.Trace[len(res.Trace)-1].NextState).To(Equal(machine.StateHalt))
	})
})
