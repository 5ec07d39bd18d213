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

type AssessmentServiceTestSuite struct {
	suite.Suite
	testDB  *testutil.TestDatabase
	service *AssessmentService
	user    *models.User
	skill   *models.Skill
}

func (s *AssessmentServiceTestSuite) SetupSuite() {
	logger.Log = zap.NewNop()
	s.testDB = testutil.SetupTestDatabase(s.T())
	s.service = NewAssessmentService(
		repository.NewAssessmentRepository(s.testDB.DB),
		repository.NewSkillRepository(s.testDB.DB),
	)
}

func (s *AssessmentServiceTestSuite) TearDownSuite() {
	s.testDB.Teardown(s.T())
}

func (s *AssessmentServiceTestSuite) SetupTest() {
	testutil.CleanDatabase(s.T(), s.testDB.DB)
	s.user = testutil.CreateTestUser(s.T(), s.testDB.DB, "Assess User", "assess@example.com", "secret1", models.RoleUser)
	s.skill = testutil.CreateTestSkill(s.T(), s.testDB.DB, "Communication", true)
}

func (s *AssessmentServiceTestSuite) requireKind(err error, kind ErrorKind) {
	var svcErr *Error
	s.Require().ErrorAs(err, &svcErr)
	s.Equal(kind, svcErr.Kind)
}

func (s *AssessmentServiceTestSuite) TestSubmit_FirstWriteSetsBothScores() {
	assessment, err := s.service.Submit(s.user.ID, AssessmentInput{SkillID: s.skill.ID, Score: 40})
	s.Require().NoError(err)
	s.Equal(40, assessment.ScoreInitial)
	s.Equal(40, assessment.ScoreCurrent)
}

func (s *AssessmentServiceTestSuite) TestSubmit_ResubmitKeepsInitialScore() {
	_, err := s.service.Submit(s.user.ID, AssessmentInput{SkillID: s.skill.ID, Score: 40})
	s.Require().NoError(err)

	updated, err := s.service.Submit(s.user.ID, AssessmentInput{SkillID: s.skill.ID, Score: 70})
	s.Require().NoError(err)
	s.Equal(40, updated.ScoreInitial, "initial score is written once")
	s.Equal(70, updated.ScoreCurrent)
}

func (s *AssessmentServiceTestSuite) TestSubmit_ScoreOutOfRange() {
	_, err := s.service.Submit(s.user.ID, AssessmentInput{SkillID: s.skill.ID, Score: 101})
	s.requireKind(err, KindValidation)

	_, err = s.service.Submit(s.user.ID, AssessmentInput{SkillID: s.skill.ID, Score: -1})
	s.requireKind(err, KindValidation)
}

func (s *AssessmentServiceTestSuite) TestSubmit_UnknownOrInactiveSkill() {
	_, err := s.service.Submit(s.user.ID, AssessmentInput{SkillID: uuid.New(), Score: 50})
	s.requireKind(err, KindNotFound)

	retired := testutil.CreateTestSkill(s.T(), s.testDB.DB, "Retired", false)
	_, err = s.service.Submit(s.user.ID, AssessmentInput{SkillID: retired.ID, Score: 50})
	s.requireKind(err, KindNotFound)
}

func (s *AssessmentServiceTestSuite) TestSubmitMany_SkipsUnknownSkills() {
	other := testutil.CreateTestSkill(s.T(), s.testDB.DB, "Leadership", true)
	retired := testutil.CreateTestSkill(s.T(), s.testDB.DB, "Retired", false)

	results, err := s.service.SubmitMany(s.user.ID, []AssessmentInput{
		{SkillID: s.skill.ID, Score: 40},
		{SkillID: other.ID, Score: 60},
		{SkillID: retired.ID, Score: 80},
		{SkillID: uuid.New(), Score: 20},
	})
	s.Require().NoError(err)
	s.Len(results, 2, "unknown and inactive skills are skipped, not fatal")
}

func (s *AssessmentServiceTestSuite) TestGetMineBySkill_NotFound() {
	_, err := s.service.GetMineBySkill(s.user.ID, s.skill.ID)
	s.requireKind(err, KindNotFound)
}

func (s *AssessmentServiceTestSuite) TestListMine() {
	other := testutil.CreateTestSkill(s.T(), s.testDB.DB, "Leadership", true)
	_, err := s.service.Submit(s.user.ID, AssessmentInput{SkillID: s.skill.ID, Score: 40})
	s.Require().NoError(err)
	_, err = s.service.Submit(s.user.ID, AssessmentInput{SkillID: other.ID, Score: 60})
	s.Require().NoError(err)

	assessments, err := s.service.ListMine(s.user.ID)
	s.Require().NoError(err)
	s.Len(assessments, 2)
}

func TestAssessmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssessmentServiceTestSuite))
}
