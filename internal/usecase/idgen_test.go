package usecase

import "testing"

func TestNextRecordID(t *testing.T) {
	cases := []struct {
		name string
		ids  []string
		want string
	}{
		{name: "empty collection", ids: nil, want: "Q-001"},
		{name: "sequential", ids: []string{"Q-001", "Q-002"}, want: "Q-003"},
		{name: "gap keeps max", ids: []string{"Q-001", "Q-007"}, want: "Q-008"},
		{name: "foreign prefix ignored", ids: []string{"O-009", "Q-002"}, want: "Q-003"},
		{name: "unparsable suffix skipped", ids: []string{"Q-abc", "Q-004"}, want: "Q-005"},
		{name: "only unparsable", ids: []string{"Q-abc"}, want: "Q-001"},
		{name: "beyond padding width", ids: []string{"Q-999"}, want: "Q-1000"},
		{name: "wide id wins", ids: []string{"Q-1000", "Q-004"}, want: "Q-1001"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := nextRecordID("Q-", tc.ids)
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}
