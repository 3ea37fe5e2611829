package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/divin-k/guessquest/internal/dependencies/mocks"
	"github.com/divin-k/guessquest/internal/model"
	"github.com/divin-k/guessquest/internal/storage/memory"
	"github.com/divin-k/guessquest/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestRecordIfBetterCreatesRecord() {
	updated, err := s.service.RecordIfBetter(s.ctx, "alice", model.LevelEasy, 4)
	s.Require().NoError(err)
	s.True(updated)

	record, err := s.storage.GetScore(s.ctx, "alice", model.LevelEasy)
	s.Require().NoError(err)
	s.Equal(4, record.Attempts)
	s.Equal(s.clock.CurrentTime, record.AchievedAt)
}

func (s *ServiceSuite) TestRecordIfBetterKeepsBestOnWorseResult() {
	_, _ = s.service.RecordIfBetter(s.ctx, "alice", model.LevelEasy, 4)
	s.clock.Advance(time.Hour)

	updated, err := s.service.RecordIfBetter(s.ctx, "alice", model.LevelEasy, 6)
	s.Require().NoError(err)
	s.False(updated)

	record, err := s.storage.GetScore(s.ctx, "alice", model.LevelEasy)
	s.Require().NoError(err)
	s.Equal(4, record.Attempts)
}

func (s *ServiceSuite) TestRecordIfBetterImprovesRecord() {
	_, _ = s.service.RecordIfBetter(s.ctx, "alice", model.LevelEasy, 6)
	s.clock.Advance(time.Hour)

	updated, err := s.service.RecordIfBetter(s.ctx, "alice", model.LevelEasy, 4)
	s.Require().NoError(err)
	s.True(updated)

	record, err := s.storage.GetScore(s.ctx, "alice", model.LevelEasy)
	s.Require().NoError(err)
	s.Equal(4, record.Attempts)
	s.Equal(s.clock.CurrentTime, record.AchievedAt)
}

func (s *ServiceSuite) TestRecordIfBetterRejectsInvalidAttempts() {
	_, err := s.service.RecordIfBetter(s.ctx, "alice", model.LevelEasy, 0)
	s.ErrorIs(err, ErrInvalidAttempts)
}

func (s *ServiceSuite) TestTopNOrdersByAttemptsThenAchievedAt() {
	_, _ = s.service.RecordIfBetter(s.ctx, "bob", model.LevelEasy, 3)
	s.clock.Advance(time.Hour)
	_, _ = s.service.RecordIfBetter(s.ctx, "alice", model.LevelEasy, 3)
	s.clock.Advance(time.Hour)
	_, _ = s.service.RecordIfBetter(s.ctx, "carol", model.LevelEasy, 2)

	records, err := s.service.TopN(s.ctx, model.LevelEasy, 3)
	s.Require().NoError(err)
	s.Require().Len(records, 3)

	s.Equal("carol", records[0].PlayerName)
	s.Equal("bob", records[1].PlayerName, "earlier achievement ranks higher on ties")
	s.Equal("alice", records[2].PlayerName)
}

func (s *ServiceSuite) TestTopNTruncates() {
	for _, player := range []string{"a", "b", "c", "d", "e"} {
		_, _ = s.service.RecordIfBetter(s.ctx, player, model.LevelHard, 2)
		s.clock.Advance(time.Minute)
	}

	records, err := s.service.TopN(s.ctx, model.LevelHard, DisplayLimit)
	s.Require().NoError(err)
	s.Len(records, 3)
}

func (s *ServiceSuite) TestTopNEmptyLevel() {
	records, err := s.service.TopN(s.ctx, model.LevelMedium, 3)
	s.Require().NoError(err)
	s.Empty(records)
}

func (s *ServiceSuite) TestAllLevelsFixedOrder() {
	_, _ = s.service.RecordIfBetter(s.ctx, "alice", model.LevelHard, 2)
	_, _ = s.service.RecordIfBetter(s.ctx, "alice", model.LevelEasy, 4)

	boards, err := s.service.AllLevels(s.ctx, 3)
	s.Require().NoError(err)
	s.Require().Len(boards, 3)

	s.Equal(model.LevelEasy, boards[0].Level)
	s.Equal(model.LevelMedium, boards[1].Level)
	s.Equal(model.LevelHard, boards[2].Level)

	s.Len(boards[0].Records, 1)
	s.Empty(boards[1].Records)
	s.Len(boards[2].Records, 1)
}
