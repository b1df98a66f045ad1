package journal

import (
	"errors"
	"slices"
	"strings"

	"github.com/fxtae/journal/date"
	"github.com/fxtae/journal/kv"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Store owns the in-memory record lists and the balance scalars for the
// lifetime of a session. All other components receive read-only snapshots.
//
// The in-memory state is the source of truth: every mutation is applied in
// memory first and then persisted. When persisting fails, the mutation stands
// and the error is returned as a *PersistenceError for the caller to surface
// as a non-fatal warning.
type Store struct {
	db  kv.Store
	log zerolog.Logger

	trades          []TradeRecord
	dreams          []DreamRecord
	startingBalance decimal.Decimal
}

// NewStore creates a store bound to the given persistence backend. Call Load
// before using it.
func NewStore(db kv.Store, log zerolog.Logger) *Store {
	return &Store{db: db, log: log}
}

// Load reads trades, dreams, and balances from persistence. Missing or
// corrupt data initializes to empty state without failing the caller; the
// returned error, if any, is a *PersistenceError suitable for a warning.
func (s *Store) Load() error {
	var firstErr error
	note := func(err error) {
		if firstErr == nil {
			firstErr = err
		}
	}

	s.trades = nil
	if data, err := s.db.Get(keyTrades); err == nil {
		trades, err := decodeTrades(data)
		if err != nil {
			s.log.Warn().Err(err).Msg("corrupt trade list in storage, starting empty")
		} else {
			s.trades = trades
		}
	} else if !errors.Is(err, kv.ErrNotExist) {
		s.log.Warn().Err(err).Str("key", keyTrades).Msg("could not read storage")
		note(&PersistenceError{Op: "load", Key: keyTrades, Err: err})
	}

	s.dreams = nil
	if data, err := s.db.Get(keyDreams); err == nil {
		dreams, err := decodeDreams(data)
		if err != nil {
			s.log.Warn().Err(err).Msg("corrupt dream list in storage, starting empty")
		} else {
			s.dreams = dreams
		}
	} else if !errors.Is(err, kv.ErrNotExist) {
		s.log.Warn().Err(err).Str("key", keyDreams).Msg("could not read storage")
		note(&PersistenceError{Op: "load", Key: keyDreams, Err: err})
	}

	s.startingBalance = decimal.Zero
	if data, err := s.db.Get(keyStartingBalance); err == nil {
		balance, err := decodeBalance(data)
		if err != nil {
			s.log.Warn().Err(err).Msg("corrupt starting balance in storage, using zero")
		} else {
			s.startingBalance = balance
		}
	} else if !errors.Is(err, kv.ErrNotExist) {
		s.log.Warn().Err(err).Str("key", keyStartingBalance).Msg("could not read storage")
		note(&PersistenceError{Op: "load", Key: keyStartingBalance, Err: err})
	}

	s.log.Debug().
		Int("trades", len(s.trades)).
		Int("dreams", len(s.dreams)).
		Msg("journal loaded")
	return firstErr
}

// Trades returns a snapshot of the trade list, newest insertion first.
func (s *Store) Trades() []TradeRecord {
	return slices.Clone(s.trades)
}

// Dreams returns a snapshot of the dream list, newest insertion first.
func (s *Store) Dreams() []DreamRecord {
	return slices.Clone(s.dreams)
}

// Trade returns the trade with the given id.
func (s *Store) Trade(id int64) (TradeRecord, error) {
	for _, t := range s.trades {
		if t.ID == id {
			return t, nil
		}
	}
	return TradeRecord{}, &NotFoundError{Kind: "trade", ID: id}
}

// StartingBalance returns the user-set baseline balance.
func (s *Store) StartingBalance() decimal.Decimal { return s.startingBalance }

// AccountBalance returns startingBalance plus the sum of all trade P&L. It is
// recomputed on every call; the persisted copy is a cache only.
func (s *Store) AccountBalance() decimal.Decimal {
	return s.startingBalance.Add(NetPnL(s.trades))
}

// TradeCandidate carries the mutable fields of a trade for create and update
// operations.
type TradeCandidate struct {
	Date        date.Date
	Time        date.Clock
	TradeNumber int
	Pair        string
	Strategy    string
	PnL         decimal.Decimal
	Notes       string
}

func (c TradeCandidate) validate() error {
	switch {
	case c.Date.IsZero():
		return &ValidationError{Field: "date", Reason: "required"}
	case c.Time.IsZero():
		return &ValidationError{Field: "time", Reason: "required"}
	case c.TradeNumber < 1 || c.TradeNumber > MaxTradesPerDay:
		return &ValidationError{Field: "tradeNumber", Reason: "must be between 1 and 4"}
	case strings.TrimSpace(c.Pair) == "":
		return &ValidationError{Field: "pair", Reason: "required"}
	case strings.TrimSpace(c.Strategy) == "":
		return &ValidationError{Field: "strategy", Reason: "required"}
	}
	return nil
}

func (c TradeCandidate) record(id int64) TradeRecord {
	notes := c.Notes
	if strings.TrimSpace(notes) == "" {
		notes = DefaultNotes
	}
	return TradeRecord{
		ID:          id,
		Date:        c.Date,
		Time:        c.Time,
		TradeNumber: c.TradeNumber,
		Pair:        c.Pair,
		Strategy:    c.Strategy,
		PnL:         c.PnL,
		Notes:       notes,
	}
}

// AddTrade validates the candidate, enforces the per-day limit, assigns a new
// id, and prepends the record to the list (newest-first insertion order).
func (s *Store) AddTrade(c TradeCandidate) (TradeRecord, error) {
	if err := c.validate(); err != nil {
		return TradeRecord{}, err
	}
	if len(FilterOn(s.trades, c.Date)) >= MaxTradesPerDay {
		return TradeRecord{}, dailyLimitError(c.Date)
	}

	t := c.record(newID())
	s.trades = append([]TradeRecord{t}, s.trades...)
	s.log.Info().Int64("id", t.ID).Str("pair", t.Pair).Str("pnl", t.PnL.String()).Msg("trade recorded")
	return t, s.saveTrades()
}

// UpdateTrade replaces all mutable fields of the trade with the given id.
// The per-day limit only gates creation, editing an existing trade onto a
// full day is allowed.
func (s *Store) UpdateTrade(id int64, c TradeCandidate) (TradeRecord, error) {
	if err := c.validate(); err != nil {
		return TradeRecord{}, err
	}
	for i, t := range s.trades {
		if t.ID == id {
			s.trades[i] = c.record(id)
			s.log.Info().Int64("id", id).Msg("trade updated")
			return s.trades[i], s.saveTrades()
		}
	}
	return TradeRecord{}, &NotFoundError{Kind: "trade", ID: id}
}

// RemoveTrade deletes the trade with the given id.
func (s *Store) RemoveTrade(id int64) error {
	for i, t := range s.trades {
		if t.ID == id {
			s.trades = slices.Delete(s.trades, i, i+1)
			s.log.Info().Int64("id", id).Msg("trade removed")
			return s.saveTrades()
		}
	}
	return &NotFoundError{Kind: "trade", ID: id}
}

// AddDream records a new dream note dated today.
func (s *Store) AddDream(content string) (DreamRecord, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return DreamRecord{}, &ValidationError{Field: "content", Reason: "required"}
	}
	d := DreamRecord{ID: newID(), Date: date.Today(), Content: content}
	s.dreams = append([]DreamRecord{d}, s.dreams...)
	s.log.Info().Int64("id", d.ID).Msg("dream recorded")
	return d, s.saveDreams()
}

// UpdateDream replaces the content of the dream with the given id in place,
// keeping its id and date. Deletion is a separate, explicit action.
func (s *Store) UpdateDream(id int64, content string) (DreamRecord, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return DreamRecord{}, &ValidationError{Field: "content", Reason: "required"}
	}
	for i, d := range s.dreams {
		if d.ID == id {
			s.dreams[i].Content = content
			s.log.Info().Int64("id", id).Msg("dream updated")
			return s.dreams[i], s.saveDreams()
		}
	}
	return DreamRecord{}, &NotFoundError{Kind: "dream", ID: id}
}

// RemoveDream deletes the dream with the given id.
func (s *Store) RemoveDream(id int64) error {
	for i, d := range s.dreams {
		if d.ID == id {
			s.dreams = slices.Delete(s.dreams, i, i+1)
			s.log.Info().Int64("id", id).Msg("dream removed")
			return s.saveDreams()
		}
	}
	return &NotFoundError{Kind: "dream", ID: id}
}

// SetStartingBalance updates the user-set baseline. Non-positive values are
// rejected.
func (s *Store) SetStartingBalance(v decimal.Decimal) error {
	if v.Sign() <= 0 {
		return &ValidationError{Field: "startingBalance", Reason: "must be greater than 0"}
	}
	s.startingBalance = v
	s.log.Info().Str("startingBalance", v.String()).Msg("starting balance updated")
	return s.saveBalances()
}

// ClearAll resets trades, dreams, and balances to an empty journal with the
// given starting balance, and persists the reset.
func (s *Store) ClearAll(startingBalance decimal.Decimal) error {
	s.trades = nil
	s.dreams = nil
	s.startingBalance = startingBalance
	s.log.Info().Msg("journal cleared")
	if err := s.saveTrades(); err != nil {
		return err
	}
	return s.saveDreams()
}

// Restore replaces the whole journal with the content of a backup. Records
// are taken as-is, ids included; only the derived balance is recomputed.
func (s *Store) Restore(b Backup) error {
	s.trades = slices.Clone(b.Trades)
	s.dreams = slices.Clone(b.Dreams)
	s.startingBalance = b.StartingBalance
	s.log.Info().
		Int("trades", len(s.trades)).
		Int("dreams", len(s.dreams)).
		Msg("journal restored from backup")
	if err := s.saveTrades(); err != nil {
		return err
	}
	return s.saveDreams()
}

func (s *Store) saveTrades() error {
	data, err := encodeTrades(s.trades)
	if err != nil {
		return &PersistenceError{Op: "save", Key: keyTrades, Err: err}
	}
	if err := s.db.Set(keyTrades, data); err != nil {
		s.log.Error().Err(err).Str("key", keyTrades).Msg("could not persist trades")
		return &PersistenceError{Op: "save", Key: keyTrades, Err: err}
	}
	return s.saveBalances()
}

func (s *Store) saveDreams() error {
	data, err := encodeDreams(s.dreams)
	if err != nil {
		return &PersistenceError{Op: "save", Key: keyDreams, Err: err}
	}
	if err := s.db.Set(keyDreams, data); err != nil {
		s.log.Error().Err(err).Str("key", keyDreams).Msg("could not persist dreams")
		return &PersistenceError{Op: "save", Key: keyDreams, Err: err}
	}
	return nil
}

// saveBalances persists the baseline and the derived balance cache.
func (s *Store) saveBalances() error {
	if err := s.db.Set(keyStartingBalance, encodeBalance(s.startingBalance)); err != nil {
		s.log.Error().Err(err).Str("key", keyStartingBalance).Msg("could not persist balance")
		return &PersistenceError{Op: "save", Key: keyStartingBalance, Err: err}
	}
	if err := s.db.Set(keyAccountBalance, encodeBalance(s.AccountBalance())); err != nil {
		s.log.Error().Err(err).Str("key", keyAccountBalance).Msg("could not persist balance")
		return &PersistenceError{Op: "save", Key: keyAccountBalance, Err: err}
	}
	return nil
}
