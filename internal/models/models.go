package models

import (
	"strings"
	"time"
)

type Egg struct {
	ID             int    `json:"id"`
	Reward         Reward `json:"reward"`
	WinningRate    int    `json:"winningRate"`
	Broken         bool   `json:"broken"`
	ManuallyBroken bool   `json:"manuallyBroken,omitempty"`
}

// EggView is the per-egg slice of the public game state. Reward may be
// masked depending on the link-used rule, and Allowed is only populated
// when the request carries an egg-bound link.
type EggView struct {
	ID          int    `json:"id"`
	Reward      Reward `json:"reward"`
	WinningRate int    `json:"winningRate"`
	Broken      bool   `json:"broken"`
	Allowed     *bool  `json:"allowed,omitempty"`
}

type GameState struct {
	Deadline     int64     `json:"deadline"`
	BrokenEggs   []int     `json:"brokenEggs"`
	Progress     float64   `json:"progress"`
	Eggs         []EggView `json:"eggs"`
	AllowedEggID int       `json:"allowedEggId,omitempty"`
	LinkID       int       `json:"linkId,omitempty"`
	LinkUsed     bool      `json:"linkUsed"`
}

type BreakEggResult struct {
	EggID   int    `json:"eggId"`
	Reward  Reward `json:"reward"`
	Success bool   `json:"success"`
}

type ClaimRewardsResult struct {
	TotalReward float64 `json:"totalReward"`
	Success     bool    `json:"success"`
}

// CustomLink is a single-use access token rendered as a shareable URL.
// EggID 0 means the link is not bound to a specific egg.
type CustomLink struct {
	ID        int       `json:"id"`
	Protocol  string    `json:"protocol"`
	Domain    string    `json:"domain"`
	Subdomain string    `json:"subdomain"`
	Path      string    `json:"path"`
	EggID     int       `json:"eggId"`
	Reward    Reward    `json:"reward"`
	Active    bool      `json:"active"`
	Used      bool      `json:"used"`
	CreatedAt time.Time `json:"createdAt"`
}

// FullURL renders protocol://[subdomain.]domain[/path] with the path
// normalized to a single leading slash.
func (l CustomLink) FullURL() string {
	var b strings.Builder
	b.WriteString(l.Protocol)
	b.WriteString("://")
	if l.Subdomain != "" {
		b.WriteString(l.Subdomain)
		b.WriteString(".")
	}
	b.WriteString(l.Domain)
	if path := strings.TrimLeft(l.Path, "/"); path != "" {
		b.WriteString("/")
		b.WriteString(path)
	}
	return b.String()
}

type LinkResponse struct {
	ID        int    `json:"id"`
	FullURL   string `json:"fullUrl"`
	Protocol  string `json:"protocol"`
	Domain    string `json:"domain"`
	Subdomain string `json:"subdomain"`
	Path      string `json:"path"`
	EggID     int    `json:"eggId"`
	Reward    Reward `json:"reward"`
	Active    bool   `json:"active"`
	Used      bool   `json:"used"`
	CreatedAt string `json:"createdAt"`
}

func (l CustomLink) Response() LinkResponse {
	return LinkResponse{
		ID:        l.ID,
		FullURL:   l.FullURL(),
		Protocol:  l.Protocol,
		Domain:    l.Domain,
		Subdomain: l.Subdomain,
		Path:      l.Path,
		EggID:     l.EggID,
		Reward:    l.Reward,
		Active:    l.Active,
		Used:      l.Used,
		CreatedAt: l.CreatedAt.Format(time.RFC3339),
	}
}

type CreateLinkRequest struct {
	Domain    string `json:"domain"`
	Subdomain string `json:"subdomain"`
	Path      string `json:"path"`
	EggID     int    `json:"eggId"`
	Protocol  string `json:"protocol"`
}

type WinRateGroup struct {
	WinRate int   `json:"winRate"`
	EggIDs  []int `json:"eggIds"`
}

type WinRateGroups struct {
	GroupA WinRateGroup `json:"groupA"`
	GroupB WinRateGroup `json:"groupB"`
}

// GlobalWinRateConfig layers the probabilistic toggles on top of the
// per-egg rates. WinRateSystemEnabled is the master switch: when off,
// every break pays the configured reward.
type GlobalWinRateConfig struct {
	WinRateSystemEnabled bool          `json:"winRateSystemEnabled"`
	Enabled              bool          `json:"enabled"`
	UseGroups            bool          `json:"useGroups"`
	GlobalWinRate        int           `json:"globalWinRate"`
	Groups               WinRateGroups `json:"groups"`
}

// GlobalWinRatePatch is a partial update: nil fields are left untouched.
type GlobalWinRatePatch struct {
	WinRateSystemEnabled *bool          `json:"winRateSystemEnabled"`
	Enabled              *bool          `json:"enabled"`
	UseGroups            *bool          `json:"useGroups"`
	GlobalWinRate        *int           `json:"globalWinRate"`
	Groups               *WinRateGroups `json:"groups"`
}
