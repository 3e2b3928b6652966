package integration_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/joho/godotenv"
	. "github.com/onsi/gomega"
	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"

	"github.com/39C-wallenstein/torn-api/api"
	"github.com/39C-wallenstein/torn-api/api/client"
	tornhttp "github.com/39C-wallenstein/torn-api/api/http"
	"github.com/39C-wallenstein/torn-api/api/key"
	"github.com/39C-wallenstein/torn-api/api/user"
	"github.com/39C-wallenstein/torn-api/config"
)

// The contract tests talk to the live API and need a real key, either
// in the environment or in a .env file at the repository root.
func TestContract(t *testing.T) {
	_ = godotenv.Load("../.env")

	if os.Getenv("TORN_API_KEY") == "" {
		t.Skip("TORN_API_KEY is not set; skipping contract tests")
	}

	spec.Run(t, "Contract Tests", testContract, spec.Report(report.Terminal{}))
}

func testContract(t *testing.T, when spec.G, it spec.S) {
	var (
		subject *client.Client
		ctx     context.Context
	)

	it.Before(func() {
		RegisterTestingT(t)

		cfg := config.New().ReadDefaults()
		cfg.APIKey = os.Getenv("TORN_API_KEY")

		var err error
		subject, err = client.New(tornhttp.RealCallerFactory, cfg)
		Expect(err).NotTo(HaveOccurred())

		ctx = context.Background()
	})

	when("querying the key section", func() {
		it("reports the key's access level and selections", func() {
			response, err := subject.Key().Selections(key.SelectionInfo).Send(ctx)
			Expect(err).NotTo(HaveOccurred())

			info, err := response.Info()
			Expect(err).NotTo(HaveOccurred())
			Expect(info.AccessLevel).To(BeNumerically(">=", 1))
			Expect(info.Selections).NotTo(BeEmpty())
			Expect(info.Selections).To(HaveKey("user"))
		})
	})

	when("querying the user section", func() {
		it("reports on the key owner when no ID is given", func() {
			response, err := subject.User().Selections(user.SelectionBasic).Send(ctx)
			Expect(err).NotTo(HaveOccurred())

			basic, err := response.Basic()
			Expect(err).NotTo(HaveOccurred())
			Expect(basic.PlayerID).To(BeNumerically(">", 0))
			Expect(basic.Name).NotTo(BeEmpty())
			Expect(basic.Level).To(BeNumerically(">", 0))
		})
	})

	when("using a bad key", func() {
		it("surfaces the incorrect key error", func() {
			cfg := config.New().ReadDefaults()
			cfg.APIKey = "definitely-not-a-key"

			badClient, err := client.New(tornhttp.RealCallerFactory, cfg)
			Expect(err).NotTo(HaveOccurred())

			_, err = badClient.User().Selections(user.SelectionBasic).Send(ctx)
			Expect(err).To(HaveOccurred())

			var apiErr *api.Error
			Expect(errors.As(err, &apiErr)).To(BeTrue())
			Expect(apiErr.Code).To(Equal(api.CodeIncorrectKey))
		})
	})
}
