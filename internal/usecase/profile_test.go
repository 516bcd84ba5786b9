//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"portaria/internal/domain/user"
	"portaria/internal/infra"
	"portaria/internal/usecase"
	"portaria/tests/common/builder"
	usecasemock "portaria/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProfileGuarantorTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockProfiles *usecasemock.MockProfileRepository
	guarantor    usecase.ProfileGuarantor
}

func (s *ProfileGuarantorTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockProfiles = usecasemock.NewMockProfileRepository(s.mockCtrl)
	s.guarantor = usecase.NewProfileGuarantor(s.mockProfiles)
}

func (s *ProfileGuarantorTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProfileGuarantorSuite(t *testing.T) {
	suite.Run(t, new(ProfileGuarantorTestSuite))
}

func (s *ProfileGuarantorTestSuite) TestEnsure() {
	ctx := context.Background()
	notFound := infra.WrapRepoErr("profile not found", errors.New("no rows"), infra.KindNotFound)

	s.Run("existing profile: no insert", func() {
		actorID := uuid.New()
		s.mockProfiles.EXPECT().FindByID(gomock.Any(), actorID).
			Return(builder.NewUserBuilder().WithID(actorID).BuildRM(), nil).Times(1)

		s.True(s.guarantor.Ensure(ctx, actorID, "Ana Lima", "ana@example.com"))
	})

	s.Run("missing profile: inserts a minimal record with the hints", func() {
		actorID := uuid.New()
		s.mockProfiles.EXPECT().FindByID(gomock.Any(), actorID).Return(nil, notFound).Times(1)
		s.mockProfiles.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *user.Profile) error {
				s.Equal(actorID, p.ID())
				s.Equal("Ana Lima", p.DisplayName().Value())
				s.Equal("ana@example.com", p.Email().Value())
				s.Equal(user.RoleRequester, p.Role())
				s.Empty(p.PasswordHash())
				return nil
			}).Times(1)

		s.True(s.guarantor.Ensure(ctx, actorID, "Ana Lima", "ana@example.com"))
	})

	s.Run("missing profile without hints: placeholder identity", func() {
		actorID := uuid.New()
		s.mockProfiles.EXPECT().FindByID(gomock.Any(), actorID).Return(nil, notFound).Times(1)
		s.mockProfiles.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *user.Profile) error {
				s.Equal("Visitante", p.DisplayName().Value())
				s.Equal(fmt.Sprintf("%s@pending.local", actorID), p.Email().Value())
				return nil
			}).Times(1)

		s.True(s.guarantor.Ensure(ctx, actorID, "", ""))
	})

	s.Run("insert failure is tolerated", func() {
		actorID := uuid.New()
		s.mockProfiles.EXPECT().FindByID(gomock.Any(), actorID).Return(nil, notFound).Times(1)
		s.mockProfiles.EXPECT().Insert(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("insert profile", errors.New("duplicate"), infra.KindDuplicateKey)).Times(1)

		s.True(s.guarantor.Ensure(ctx, actorID, "Ana Lima", ""))
	})

	s.Run("lookup failure proceeds optimistically without insert", func() {
		actorID := uuid.New()
		s.mockProfiles.EXPECT().FindByID(gomock.Any(), actorID).
			Return(nil, infra.WrapRepoErr("find profile", errors.New("connection refused"))).Times(1)

		s.True(s.guarantor.Ensure(ctx, actorID, "Ana Lima", ""))
	})
}
