package client

import (
	"strings"

	"go.uber.org/zap"
)

func (c *Client) printRequestDebugInfo(endpoint string) {
	sugar := zap.S()
	sugar.Debugf("\nGenerated cURL command:\n")

	// Never echo the API key itself.
	masked := endpoint
	if c.Config.APIKey != "" {
		masked = strings.ReplaceAll(endpoint, "key="+c.Config.APIKey, "key=${"+c.Config.APIKeyEnvVarName()+"}")
	}

	sugar.Debugf("curl --location --request GET '%s' \\", masked)
	sugar.Debugf("  --header 'Accept: application/json' \\")
	sugar.Debugf("  --header 'User-Agent: %s'", c.Config.UserAgent)
}

func (c *Client) printResponseDebugInfo(raw []byte) {
	sugar := zap.S()
	sugar.Debugf("\nResponse\n")
	sugar.Debugf("%s\n", raw)
}
