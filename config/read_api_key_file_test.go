package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/39C-wallenstein/torn-api/config"
	. "github.com/onsi/gomega"
	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"
)

const maxKeyFileBytes = 10 * 1024

func TestUnitReadAPIKeyFile(t *testing.T) {
	spec.Run(t, "ReadAPIKeyFile", testReadAPIKeyFile, spec.Report(report.Terminal{}))
}

func testReadAPIKeyFile(t *testing.T, when spec.G, it spec.S) {
	it.Before(func() {
		RegisterTestingT(t)
	})

	when("the file exists and is small", func() {
		it("returns trimmed contents", func() {
			dir := t.TempDir()
			p := filepath.Join(dir, "torn.key")
			Expect(os.WriteFile(p, []byte("  AbCdEf1234567890 \n"), 0o600)).To(Succeed())

			key, err := config.ReadAPIKeyFile(p)

			Expect(err).NotTo(HaveOccurred())
			Expect(key).To(Equal("AbCdEf1234567890"))
		})

		it("accepts a file at exactly the size limit", func() {
			dir := t.TempDir()
			p := filepath.Join(dir, "torn.key")

			content := strings.Repeat("a", maxKeyFileBytes)
			Expect(os.WriteFile(p, []byte(content), 0o600)).To(Succeed())

			key, err := config.ReadAPIKeyFile(p)

			Expect(err).NotTo(HaveOccurred())
			Expect(key).To(Equal(content))
		})
	})

	when("the file is empty or whitespace", func() {
		it("returns an 'empty' error for an empty file", func() {
			dir := t.TempDir()
			p := filepath.Join(dir, "empty.key")
			Expect(os.WriteFile(p, []byte(""), 0o600)).To(Succeed())

			_, err := config.ReadAPIKeyFile(p)

			Expect(err).To(MatchError("api key file is empty"))
		})

		it("returns an 'empty' error for a whitespace only file", func() {
			dir := t.TempDir()
			p := filepath.Join(dir, "ws.key")
			Expect(os.WriteFile(p, []byte(" \n\t  "), 0o600)).To(Succeed())

			_, err := config.ReadAPIKeyFile(p)

			Expect(err).To(MatchError("api key file is empty"))
		})
	})

	when("the file is too large", func() {
		it("fails when the size is over the limit", func() {
			dir := t.TempDir()
			p := filepath.Join(dir, "big.key")

			content := strings.Repeat("a", maxKeyFileBytes+1)
			Expect(os.WriteFile(p, []byte(content), 0o600)).To(Succeed())

			_, err := config.ReadAPIKeyFile(p)

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("api key file too large"))
		})
	})

	when("the path cannot be opened", func() {
		it("returns a wrapped open error", func() {
			_, err := config.ReadAPIKeyFile(filepath.Join(t.TempDir(), "does-not-exist.key"))

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("failed to open api key file"))
		})
	})

	when("the path is not a regular file", func() {
		it("rejects a directory", func() {
			_, err := config.ReadAPIKeyFile(t.TempDir())

			Expect(err).To(MatchError("api key file must be a regular file"))
		})
	})

	when("the path contains dot segments", func() {
		it("cleans the path before opening", func() {
			dir := t.TempDir()
			sub := filepath.Join(dir, "sub")
			Expect(os.MkdirAll(sub, 0o700)).To(Succeed())

			target := filepath.Join(dir, "torn.key")
			Expect(os.WriteFile(target, []byte("AbCdEf1234567890"), 0o600)).To(Succeed())

			key, err := config.ReadAPIKeyFile(filepath.Join(sub, "..", "torn.key"))

			Expect(err).NotTo(HaveOccurred())
			Expect(key).To(Equal("AbCdEf1234567890"))
		})
	})
}
