package game

import (
	"log"
	"sync"
	"time"

	"eggbreak/internal/models"
)

const (
	MinReward = 50
	MaxReward = 500

	DefaultWinningRate   = 100
	defaultGlobalWinRate = 30
	defaultGroupARate    = 20
	defaultGroupBRate    = 80

	sessionWindow = 24 * time.Hour
)

// Store owns all game state for the process lifetime: the egg registry,
// the link registry, the global win-rate config and the running session.
// One mutex guards everything so that link consumption and the paired egg
// break commit or fail together.
type Store struct {
	mu          sync.Mutex
	totalEggs   int
	eggs        map[int]*models.Egg
	links       map[int]*models.CustomLink
	nextLinkID  int
	brokenEggs  []int
	totalReward float64
	deadline    int64
	winRate     models.GlobalWinRateConfig
	rng         Source
}

func NewStore(totalEggs int, rng Source) *Store {
	if totalEggs <= 0 {
		totalEggs = 8
	}
	if rng == nil {
		rng = DefaultSource()
	}
	s := &Store{
		totalEggs:  totalEggs,
		eggs:       make(map[int]*models.Egg, totalEggs),
		links:      make(map[int]*models.CustomLink),
		nextLinkID: 1,
		deadline:   time.Now().Add(sessionWindow).UnixMilli(),
		rng:        rng,
		winRate: models.GlobalWinRateConfig{
			WinRateSystemEnabled: false,
			Enabled:              false,
			UseGroups:            false,
			GlobalWinRate:        defaultGlobalWinRate,
			Groups: models.WinRateGroups{
				GroupA: models.WinRateGroup{WinRate: defaultGroupARate, EggIDs: firstHalf(totalEggs)},
				GroupB: models.WinRateGroup{WinRate: defaultGroupBRate, EggIDs: secondHalf(totalEggs)},
			},
		},
	}
	for i := 1; i <= totalEggs; i++ {
		s.eggs[i] = &models.Egg{
			ID:          i,
			Reward:      models.NumericReward(float64(s.randomAmount())),
			WinningRate: DefaultWinningRate,
		}
	}
	return s
}

func (s *Store) TotalEggs() int {
	return s.totalEggs
}

func (s *Store) randomAmount() int {
	n := MinReward + int(s.rng.Float64()*float64(MaxReward-MinReward+1))
	if n > MaxReward {
		n = MaxReward
	}
	return n
}

func firstHalf(total int) []int {
	ids := make([]int, 0, total/2)
	for i := 1; i <= total/2; i++ {
		ids = append(ids, i)
	}
	return ids
}

func secondHalf(total int) []int {
	ids := make([]int, 0, total-total/2)
	for i := total/2 + 1; i <= total; i++ {
		ids = append(ids, i)
	}
	return ids
}

// GameState renders the public view. linkID 0 means the plain non-link
// flow. Once a link has been consumed, eggs with a 0% rate show a zero
// reward instead of the configured one.
func (s *Store) GameState(linkID int) models.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()

	allowedEggID := 0
	linkUsed := false
	if linkID > 0 {
		if link, ok := s.links[linkID]; ok {
			allowedEggID = link.EggID
			linkUsed = link.Used
		}
	}

	eggs := make([]models.EggView, 0, s.totalEggs)
	for i := 1; i <= s.totalEggs; i++ {
		egg := s.eggs[i]
		view := models.EggView{
			ID:          egg.ID,
			Reward:      egg.Reward,
			WinningRate: egg.WinningRate,
			Broken:      egg.Broken,
		}
		if linkUsed && egg.WinningRate <= 0 {
			view.Reward = models.NumericReward(0)
		}
		if allowedEggID > 0 {
			allowed := egg.ID == allowedEggID
			view.Allowed = &allowed
		}
		eggs = append(eggs, view)
	}

	return models.GameState{
		Deadline:     s.deadline,
		BrokenEggs:   append([]int(nil), s.brokenEggs...),
		Progress:     float64(len(s.brokenEggs)) / float64(s.totalEggs) * 100,
		Eggs:         eggs,
		AllowedEggID: allowedEggID,
		LinkID:       linkID,
		LinkUsed:     linkUsed,
	}
}

// BreakEgg resolves one break attempt. When linkID is non-zero the link
// and the egg are validated before anything mutates, so a failing attempt
// never strands a voucher and a used link never pays twice.
func (s *Store) BreakEgg(eggID, linkID int) (models.BreakEggResult, Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var link *models.CustomLink
	if linkID > 0 {
		var ok bool
		link, ok = s.links[linkID]
		if !ok {
			return models.BreakEggResult{}, Lose, ErrLinkNotFound
		}
		if link.Used {
			return models.BreakEggResult{}, Lose, ErrLinkUsed
		}
	}

	egg, ok := s.eggs[eggID]
	if !ok {
		return models.BreakEggResult{}, Lose, ErrEggNotFound
	}
	if egg.Broken {
		return models.BreakEggResult{}, Lose, ErrEggAlreadyBroken
	}

	draw := s.rng.Float64() * 100
	outcome, payout := Resolve(*egg, s.winRate, draw)
	if s.winRate.WinRateSystemEnabled {
		log.Printf("egg %d: %s (draw %.1f, rate %d%%) payout=%s",
			eggID, outcome, draw, EffectiveWinRate(*egg, s.winRate), payout.String())
	} else {
		log.Printf("egg %d: guaranteed payout=%s", eggID, payout.String())
	}

	if link != nil {
		link.Used = true
	}
	egg.Broken = true
	s.brokenEggs = append(s.brokenEggs, eggID)
	if amount, ok := payout.Amount(); ok {
		s.totalReward += amount
	}

	return models.BreakEggResult{EggID: eggID, Reward: payout, Success: true}, outcome, nil
}

func (s *Store) ClaimRewards() (models.ClaimRewardsResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.totalReward <= 0 {
		return models.ClaimRewardsResult{}, ErrNoRewards
	}
	total := s.totalReward
	s.resetLocked()
	return models.ClaimRewardsResult{TotalReward: total, Success: true}, nil
}

func (s *Store) ResetGame() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

// resetLocked clears break state and the session but keeps each egg's
// configured reward and rate.
func (s *Store) resetLocked() {
	for _, egg := range s.eggs {
		egg.Broken = false
		egg.ManuallyBroken = false
	}
	s.brokenEggs = nil
	s.totalReward = 0
	s.deadline = time.Now().Add(sessionWindow).UnixMilli()
}

func (s *Store) TotalReward() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalReward
}

func (s *Store) AllEggs() []models.Egg {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eggListLocked()
}

func (s *Store) eggListLocked() []models.Egg {
	eggs := make([]models.Egg, 0, s.totalEggs)
	for i := 1; i <= s.totalEggs; i++ {
		eggs = append(eggs, *s.eggs[i])
	}
	return eggs
}

func (s *Store) UpdateEgg(eggID int, reward models.Reward, winningRate int) (models.Egg, error) {
	if err := validateReward(reward); err != nil {
		return models.Egg{}, err
	}
	if winningRate < 0 || winningRate > 100 {
		return models.Egg{}, validationErrf("winning rate must be between 0 and 100")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	egg, ok := s.eggs[eggID]
	if !ok {
		return models.Egg{}, ErrEggNotFound
	}
	log.Printf("admin: egg %d reward %s -> %s, rate %d%% -> %d%%",
		eggID, egg.Reward.String(), reward.String(), egg.WinningRate, winningRate)
	egg.Reward = reward
	egg.WinningRate = winningRate
	return *egg, nil
}

// SetEggBroken force-sets the broken flag and keeps the broken-id list in
// sync. Idempotent in both directions.
func (s *Store) SetEggBroken(eggID int, broken bool) (models.Egg, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	egg, ok := s.eggs[eggID]
	if !ok {
		return models.Egg{}, ErrEggNotFound
	}
	egg.Broken = broken
	egg.ManuallyBroken = broken
	if broken {
		if !containsID(s.brokenEggs, eggID) {
			s.brokenEggs = append(s.brokenEggs, eggID)
		}
	} else {
		kept := s.brokenEggs[:0]
		for _, id := range s.brokenEggs {
			if id != eggID {
				kept = append(kept, id)
			}
		}
		s.brokenEggs = kept
	}
	return *egg, nil
}

func (s *Store) BulkSetWinRate(winningRate int) ([]models.Egg, error) {
	if winningRate < 0 || winningRate > 100 {
		return nil, validationErrf("winning rate must be between 0 and 100")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, egg := range s.eggs {
		egg.WinningRate = winningRate
	}
	log.Printf("admin: all eggs win rate set to %d%%", winningRate)
	return s.eggListLocked(), nil
}

func (s *Store) BulkSetReward(reward models.Reward) ([]models.Egg, error) {
	if err := validateReward(reward); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, egg := range s.eggs {
		egg.Reward = reward
	}
	log.Printf("admin: all eggs reward set to %s", reward.String())
	return s.eggListLocked(), nil
}

func validateReward(reward models.Reward) error {
	if label, ok := reward.Label(); ok {
		if len(label) == 0 {
			return validationErrf("reward string cannot be empty")
		}
		return nil
	}
	if amount, _ := reward.Amount(); amount < 0 {
		return validationErrf("reward number cannot be negative")
	}
	return nil
}

func (s *Store) WinRateConfig() models.GlobalWinRateConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.winRateLocked()
}

func (s *Store) winRateLocked() models.GlobalWinRateConfig {
	cfg := s.winRate
	cfg.Groups.GroupA.EggIDs = append([]int(nil), s.winRate.Groups.GroupA.EggIDs...)
	cfg.Groups.GroupB.EggIDs = append([]int(nil), s.winRate.Groups.GroupB.EggIDs...)
	return cfg
}

// UpdateWinRateConfig applies a partial patch. Group membership must stay
// disjoint and inside [1, totalEggs]; rates must stay inside [0, 100].
func (s *Store) UpdateWinRateConfig(patch models.GlobalWinRatePatch) (models.GlobalWinRateConfig, error) {
	if patch.GlobalWinRate != nil && (*patch.GlobalWinRate < 0 || *patch.GlobalWinRate > 100) {
		return models.GlobalWinRateConfig{}, validationErrf("global win rate must be between 0 and 100")
	}
	if patch.Groups != nil {
		if err := s.validateGroups(*patch.Groups); err != nil {
			return models.GlobalWinRateConfig{}, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if patch.WinRateSystemEnabled != nil {
		s.winRate.WinRateSystemEnabled = *patch.WinRateSystemEnabled
	}
	if patch.Enabled != nil {
		s.winRate.Enabled = *patch.Enabled
	}
	if patch.UseGroups != nil {
		s.winRate.UseGroups = *patch.UseGroups
	}
	if patch.GlobalWinRate != nil {
		s.winRate.GlobalWinRate = *patch.GlobalWinRate
	}
	if patch.Groups != nil {
		s.winRate.Groups = models.WinRateGroups{
			GroupA: models.WinRateGroup{
				WinRate: patch.Groups.GroupA.WinRate,
				EggIDs:  append([]int(nil), patch.Groups.GroupA.EggIDs...),
			},
			GroupB: models.WinRateGroup{
				WinRate: patch.Groups.GroupB.WinRate,
				EggIDs:  append([]int(nil), patch.Groups.GroupB.EggIDs...),
			},
		}
	}
	log.Printf("admin: win rate config updated: system=%v global=%v groups=%v rate=%d%%",
		s.winRate.WinRateSystemEnabled, s.winRate.Enabled, s.winRate.UseGroups, s.winRate.GlobalWinRate)
	return s.winRateLocked(), nil
}

func (s *Store) validateGroups(groups models.WinRateGroups) error {
	if groups.GroupA.WinRate < 0 || groups.GroupA.WinRate > 100 {
		return validationErrf("group A win rate must be between 0 and 100")
	}
	if groups.GroupB.WinRate < 0 || groups.GroupB.WinRate > 100 {
		return validationErrf("group B win rate must be between 0 and 100")
	}
	for _, id := range groups.GroupA.EggIDs {
		if id < 1 || id > s.totalEggs {
			return validationErrf("invalid egg id in group A")
		}
	}
	for _, id := range groups.GroupB.EggIDs {
		if id < 1 || id > s.totalEggs {
			return validationErrf("invalid egg id in group B")
		}
	}
	for _, id := range groups.GroupA.EggIDs {
		if containsID(groups.GroupB.EggIDs, id) {
			return validationErrf("egg ids cannot be in both groups")
		}
	}
	return nil
}

// CreateLink allocates a new single-use link. The stored display reward is
// drawn from the same range as initial egg rewards.
func (s *Store) CreateLink(req models.CreateLinkRequest) (models.LinkResponse, error) {
	if req.Domain == "" {
		return models.LinkResponse{}, ErrDomainRequired
	}
	protocol := req.Protocol
	if protocol == "" {
		protocol = "https"
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	link := &models.CustomLink{
		ID:        s.nextLinkID,
		Protocol:  protocol,
		Domain:    req.Domain,
		Subdomain: req.Subdomain,
		Path:      req.Path,
		EggID:     req.EggID,
		Reward:    models.NumericReward(float64(s.randomAmount())),
		Active:    true,
		CreatedAt: time.Now(),
	}
	s.nextLinkID++
	s.links[link.ID] = link
	log.Printf("admin: link %d created: %s (egg %d)", link.ID, link.FullURL(), link.EggID)
	return link.Response(), nil
}

func (s *Store) Links() []models.LinkResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.LinkResponse, 0, len(s.links))
	for id := 1; id < s.nextLinkID; id++ {
		if link, ok := s.links[id]; ok {
			out = append(out, link.Response())
		}
	}
	return out
}

func (s *Store) DeleteLink(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.links[id]; !ok {
		return false
	}
	delete(s.links, id)
	return true
}
