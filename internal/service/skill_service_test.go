package service

import (
	"testing"

	"github.com/skillgrove/skillgrove/internal/models"
	"github.com/skillgrove/skillgrove/internal/repository"
	"github.com/skillgrove/skillgrove/internal/testutil"
	"github.com/skillgrove/skillgrove/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type SkillServiceTestSuite struct {
	suite.Suite
	testDB  *testutil.TestDatabase
	service *SkillService
}

func (s *SkillServiceTestSuite) SetupSuite() {
	logger.Log = zap.NewNop()
	s.testDB = testutil.SetupTestDatabase(s.T())
	s.service = NewSkillService(repository.NewSkillRepository(s.testDB.DB))
}

func (s *SkillServiceTestSuite) TearDownSuite() {
	s.testDB.Teardown(s.T())
}

func (s *SkillServiceTestSuite) SetupTest() {
	testutil.CleanDatabase(s.T(), s.testDB.DB)
}

func (s *SkillServiceTestSuite) requireKind(err error, kind ErrorKind) {
	var svcErr *Error
	s.Require().ErrorAs(err, &svcErr)
	s.Equal(kind, svcErr.Kind)
}

func (s *SkillServiceTestSuite) TestCreate_Success() {
	skill, err := s.service.Create(CreateSkillInput{Name: "  Communication  ", Description: "talking to people"})
	s.Require().NoError(err)
	s.Equal("Communication", skill.Name, "name is trimmed")
	s.True(skill.IsActive)
}

func (s *SkillServiceTestSuite) TestCreate_DuplicateNameCaseInsensitive() {
	_, err := s.service.Create(CreateSkillInput{Name: "Communication"})
	s.Require().NoError(err)

	_, err = s.service.Create(CreateSkillInput{Name: "communication"})
	s.requireKind(err, KindConflict)
}

func (s *SkillServiceTestSuite) TestCreate_InvalidName() {
	_, err := s.service.Create(CreateSkillInput{Name: "x"})
	s.requireKind(err, KindValidation)
}

func (s *SkillServiceTestSuite) TestUpdate_RenameToExistingName() {
	_, err := s.service.Create(CreateSkillInput{Name: "Communication"})
	s.Require().NoError(err)
	other, err := s.service.Create(CreateSkillInput{Name: "Leadership"})
	s.Require().NoError(err)

	name := "Communication"
	_, err = s.service.Update(other.ID, UpdateSkillInput{Name: &name})
	s.requireKind(err, KindConflict)

	// Renaming to its own name is allowed.
	own := "Leadership"
	updated, err := s.service.Update(other.ID, UpdateSkillInput{Name: &own})
	s.Require().NoError(err)
	s.Equal("Leadership", updated.Name)
}

func (s *SkillServiceTestSuite) TestDeactivate_SoftDelete() {
	skill, err := s.service.Create(CreateSkillInput{Name: "Communication"})
	s.Require().NoError(err)

	s.Require().NoError(s.service.Deactivate(skill.ID))

	stored, err := s.service.GetByID(skill.ID)
	s.Require().NoError(err, "deactivated skills stay readable")
	s.False(stored.IsActive)
}

func (s *SkillServiceTestSuite) TestDeactivate_Unknown() {
	err := s.service.Deactivate(uuid.New())
	s.requireKind(err, KindNotFound)
}

func (s *SkillServiceTestSuite) TestList_Filter() {
	_, err := s.service.Create(CreateSkillInput{Name: "Communication"})
	s.Require().NoError(err)
	inactive := false
	_, err = s.service.Create(CreateSkillInput{Name: "Retired", IsActive: &inactive})
	s.Require().NoError(err)

	active := true
	skills, total, err := s.service.List(&active, 0, 50)
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Require().Len(skills, 1)
	s.Equal("Communication", skills[0].Name)

	skills, total, err = s.service.List(nil, 0, 50)
	s.Require().NoError(err)
	s.Equal(int64(2), total)
	s.Len(skills, 2)
}

func TestSkillServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SkillServiceTestSuite))
}

type ChallengeServiceTestSuite struct {
	suite.Suite
	testDB  *testutil.TestDatabase
	service *ChallengeService
	skill   *models.Skill
}

func (s *ChallengeServiceTestSuite) SetupSuite() {
	logger.Log = zap.NewNop()
	s.testDB = testutil.SetupTestDatabase(s.T())
	s.service = NewChallengeService(
		repository.NewChallengeRepository(s.testDB.DB),
		repository.NewSkillRepository(s.testDB.DB),
	)
}

func (s *ChallengeServiceTestSuite) TearDownSuite() {
	s.testDB.Teardown(s.T())
}

func (s *ChallengeServiceTestSuite) SetupTest() {
	testutil.CleanDatabase(s.T(), s.testDB.DB)
	s.skill = testutil.CreateTestSkill(s.T(), s.testDB.DB, "Communication", true)
}

func (s *ChallengeServiceTestSuite) requireKind(err error, kind ErrorKind) {
	var svcErr *Error
	s.Require().ErrorAs(err, &svcErr)
	s.Equal(kind, svcErr.Kind)
}

func (s *ChallengeServiceTestSuite) TestCreate_Success() {
	challenge, err := s.service.Create(s.skill.ID, CreateChallengeInput{
		Title:      "Give feedback",
		OrderIndex: 1,
	})
	s.Require().NoError(err)
	s.Equal(s.skill.ID, challenge.SkillID)
	s.Equal(1, challenge.OrderIndex)
}

func (s *ChallengeServiceTestSuite) TestCreate_DuplicateOrderIndex() {
	_, err := s.service.Create(s.skill.ID, CreateChallengeInput{Title: "Give feedback", OrderIndex: 1})
	s.Require().NoError(err)

	_, err = s.service.Create(s.skill.ID, CreateChallengeInput{Title: "Receive feedback", OrderIndex: 1})
	s.requireKind(err, KindConflict)

	// The same index under a different skill is fine.
	other := testutil.CreateTestSkill(s.T(), s.testDB.DB, "Leadership", true)
	_, err = s.service.Create(other.ID, CreateChallengeInput{Title: "Delegate", OrderIndex: 1})
	s.NoError(err)
}

func (s *ChallengeServiceTestSuite) TestCreate_OrderIndexBelowOne() {
	_, err := s.service.Create(s.skill.ID, CreateChallengeInput{Title: "Give feedback", OrderIndex: 0})
	s.requireKind(err, KindValidation)
}

func (s *ChallengeServiceTestSuite) TestCreate_InactiveSkill() {
	retired := testutil.CreateTestSkill(s.T(), s.testDB.DB, "Retired", false)
	_, err := s.service.Create(retired.ID, CreateChallengeInput{Title: "Old task", OrderIndex: 1})
	s.requireKind(err, KindNotFound)
}

func (s *ChallengeServiceTestSuite) TestUpdate_MoveToTakenOrderIndex() {
	first, err := s.service.Create(s.skill.ID, CreateChallengeInput{Title: "First", OrderIndex: 1})
	s.Require().NoError(err)
	_, err = s.service.Create(s.skill.ID, CreateChallengeInput{Title: "Second", OrderIndex: 2})
	s.Require().NoError(err)

	taken := 2
	_, err = s.service.Update(first.ID, UpdateChallengeInput{OrderIndex: &taken})
	s.requireKind(err, KindConflict)

	// Keeping its own index is not a conflict.
	own := 1
	updated, err := s.service.Update(first.ID, UpdateChallengeInput{OrderIndex: &own})
	s.Require().NoError(err)
	s.Equal(1, updated.OrderIndex)
}

func (s *ChallengeServiceTestSuite) TestListBySkill_OrderedByIndex() {
	for i, title := range []string{"Third", "First", "Second"} {
		order := []int{3, 1, 2}[i]
		_, err := s.service.Create(s.skill.ID, CreateChallengeInput{Title: title, OrderIndex: order})
		s.Require().NoError(err)
	}

	challenges, total, err := s.service.ListBySkill(s.skill.ID, repository.SortOrderIndex, 0, 50)
	s.Require().NoError(err)
	s.Equal(int64(3), total)
	s.Require().Len(challenges, 3)
	s.Equal("First", challenges[0].Title)
	s.Equal("Second", challenges[1].Title)
	s.Equal("Third", challenges[2].Title)
}

func (s *ChallengeServiceTestSuite) TestListBySkill_UnknownSkill() {
	_, _, err := s.service.ListBySkill(uuid.New(), repository.SortOrderIndex, 0, 50)
	s.requireKind(err, KindNotFound)
}

func (s *ChallengeServiceTestSuite) TestDelete() {
	challenge, err := s.service.Create(s.skill.ID, CreateChallengeInput{Title: "Give feedback", OrderIndex: 1})
	s.Require().NoError(err)

	s.Require().NoError(s.service.Delete(challenge.ID))

	_, err = s.service.GetByID(challenge.ID)
	s.requireKind(err, KindNotFound)

	err = s.service.Delete(challenge.ID)
	s.requireKind(err, KindNotFound)
}

func TestChallengeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ChallengeServiceTestSuite))
}
