package referral

import (
	"regexp"
	"testing"
)

var reCode = regexp.MustCompile(`^[A-Z][a-zA-Z]+[A-Z][a-zA-Z]+[1-9][0-9]{3}$`)

func TestNewCode_Shape(t *testing.T) {
	for i := 0; i < 200; i++ {
		code := NewCode()
		if !reCode.MatchString(code) {
			t.Fatalf("code %q does not match AdjectiveNounNNNN", code)
		}
	}
}
