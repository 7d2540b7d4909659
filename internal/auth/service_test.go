package auth_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/dome-hr/dome-backend/internal"
	"github.com/dome-hr/dome-backend/internal/auth"
)

func TestAuth(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Auth Module Suite")
}

type mockAuthRepository struct {
	users  map[string]*auth.User
	hashes map[string]string
}

func (m *mockAuthRepository) GetCredentials(username string) (string, *auth.User, error) {
	user, ok := m.users[username]
	if !ok {
		return "", nil, apperrors.ErrInvalidCredentials
	}
	return m.hashes[username], user, nil
}

func (m *mockAuthRepository) GetUserByID(userID int64) (*auth.User, error) {
	for _, u := range m.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, apperrors.ErrInvalidToken
}

var _ = ginkgo.Describe("AuthService", func() {
	var (
		service *auth.Service
		repo    *mockAuthRepository
	)

	const secret = "test-secret-key-at-least-32-bytes-long!"

	ginkgo.BeforeEach(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte("rahasia"), bcrypt.MinCost)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		repo = &mockAuthRepository{
			users: map[string]*auth.User{
				"ish.admin": {ID: 2, Username: "ish.admin", Name: "ISH Admin", IDRoles: auth.RoleISH},
			},
			hashes: map[string]string{"ish.admin": string(hash)},
		}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = auth.NewService(repo, auth.NewJWTTokenGenerator(secret, time.Hour), bcrypt.MinCost, logger)
	})

	ginkgo.Describe("Authenticate", func() {
		ginkgo.It("returns a token carrying the session identity", func() {
			resp, err := service.Authenticate(auth.LoginDTO{Username: "ish.admin", Password: "rahasia"})

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(resp.Token).NotTo(gomega.BeEmpty())
			gomega.Expect(resp.User.IDRoles).To(gomega.Equal(auth.RoleISH))

			claims, err := service.ValidateAccessToken(resp.Token)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(claims.Username).To(gomega.Equal("ish.admin"))
			gomega.Expect(claims.IDRoles).To(gomega.Equal(auth.RoleISH))
			gomega.Expect(claims.UserID).To(gomega.Equal(int64(2)))
		})

		ginkgo.It("rejects a wrong password", func() {
			_, err := service.Authenticate(auth.LoginDTO{Username: "ish.admin", Password: "salah"})
			gomega.Expect(err).To(gomega.Equal(auth.ErrInvalidCredentials))
		})

		ginkgo.It("rejects an unknown username", func() {
			_, err := service.Authenticate(auth.LoginDTO{Username: "nobody", Password: "rahasia"})
			gomega.Expect(err).To(gomega.Equal(auth.ErrInvalidCredentials))
		})

		ginkgo.It("rejects empty credentials before hitting the repository", func() {
			_, err := service.Authenticate(auth.LoginDTO{})
			gomega.Expect(err).To(gomega.BeAssignableToTypeOf(auth.ValidationError{}))
		})
	})

	ginkgo.Describe("ValidateAccessToken", func() {
		ginkgo.It("rejects garbage tokens", func() {
			_, err := service.ValidateAccessToken("not-a-token")
			gomega.Expect(err).To(gomega.Equal(auth.ErrInvalidToken))
		})

		ginkgo.It("rejects a token signed with a different secret", func() {
			other := auth.NewJWTTokenGenerator("another-secret-that-is-long-enough-too", time.Hour)
			token, err := other.GenerateAccessToken(&auth.User{ID: 2, Username: "ish.admin"})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			_, err = service.ValidateAccessToken(token)
			gomega.Expect(err).To(gomega.Equal(auth.ErrInvalidToken))
		})

		ginkgo.It("rejects an expired token", func() {
			expired := auth.NewJWTTokenGenerator(secret, -time.Minute)
			token, err := expired.GenerateAccessToken(&auth.User{ID: 2, Username: "ish.admin"})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			_, err = service.ValidateAccessToken(token)
			gomega.Expect(err).To(gomega.Equal(auth.ErrTokenExpired))
		})
	})

	ginkgo.Describe("HashPassword", func() {
		ginkgo.It("hashes with the configured cost", func() {
			hash, err := service.HashPassword("rahasia")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			cost, err := bcrypt.Cost([]byte(hash))
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(cost).To(gomega.Equal(bcrypt.MinCost))
		})

		ginkgo.It("falls back to the default cost when misconfigured", func() {
			logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
			svc := auth.NewService(repo, auth.NewJWTTokenGenerator(secret, time.Hour), 99, logger)

			hash, err := svc.HashPassword("rahasia")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			cost, err := bcrypt.Cost([]byte(hash))
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(cost).To(gomega.Equal(bcrypt.DefaultCost))
		})
	})

	ginkgo.Describe("role capabilities", func() {
		ginkgo.It("follows the capability matrix", func() {
			hc := &auth.User{IDRoles: auth.RoleHCTreg}
			ish := &auth.User{IDRoles: auth.RoleISH}
			witel := &auth.User{IDRoles: auth.RoleWitel}
			superv := &auth.User{IDRoles: auth.RoleSupervisor}

			gomega.Expect(hc.CanEditKaryawan()).To(gomega.BeTrue())
			gomega.Expect(ish.CanEditKaryawan()).To(gomega.BeTrue())
			gomega.Expect(witel.CanEditKaryawan()).To(gomega.BeFalse())

			gomega.Expect(ish.CanCreateMutasi()).To(gomega.BeTrue())
			gomega.Expect(hc.CanCreateMutasi()).To(gomega.BeFalse())

			gomega.Expect(ish.CanDeleteMutasi()).To(gomega.BeTrue())
			gomega.Expect(hc.CanDeleteMutasi()).To(gomega.BeFalse())

			gomega.Expect(superv.CanDecideMutasi()).To(gomega.BeTrue())
			gomega.Expect(ish.CanDecideMutasi()).To(gomega.BeFalse())

			gomega.Expect(ish.CanSubmitRating()).To(gomega.BeTrue())
			gomega.Expect(superv.CanSubmitRating()).To(gomega.BeFalse())
			gomega.Expect(superv.CanViewRatingDetail()).To(gomega.BeTrue())
			gomega.Expect(witel.CanViewRatingDetail()).To(gomega.BeFalse())
		})
	})
})
