package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDeployOutput(t *testing.T) {
	t.Run("success with routes line", func(t *testing.T) {
		out := `Waiting for app to start...
requested state: started
instances running: 1/1
routes: myapp.apps.cloud.example.com`

		r := ClassifyDeployOutput(out)
		assert.Equal(t, DeploySuccess, r.Outcome)
		assert.Equal(t, "myapp.apps.cloud.example.com", r.URL)
	})

	t.Run("success with bare https url", func(t *testing.T) {
		out := "App started\nreachable at https://myapp.apps.cloud.example.com/home"
		r := ClassifyDeployOutput(out)
		assert.Equal(t, DeploySuccess, r.Outcome)
		assert.Contains(t, r.URL, "https://myapp.apps.cloud.example.com")
	})

	t.Run("success marker without a route is not a success", func(t *testing.T) {
		r := ClassifyDeployOutput("App started\nrequested state: started")
		assert.NotEqual(t, DeploySuccess, r.Outcome)
		assert.Empty(t, r.URL)
		assert.Contains(t, r.Diagnostic, "no route")
	})

	t.Run("build failure", func(t *testing.T) {
		r := ClassifyDeployOutput("[ERROR] BUILD FAILURE\n[ERROR] Compilation error in Foo.java")
		assert.Equal(t, DeployBuildFailure, r.Outcome)
		assert.NotEmpty(t, r.Diagnostic)
	})

	t.Run("staging failure", func(t *testing.T) {
		r := ClassifyDeployOutput("Staging error: Unable to detect buildpack")
		assert.Equal(t, DeployStagingFailure, r.Outcome)
	})

	t.Run("app crashed", func(t *testing.T) {
		r := ClassifyDeployOutput("state: CRASHED\nApp instance exited with status 137")
		assert.Equal(t, DeployAppCrashed, r.Outcome)
		assert.Contains(t, r.Diagnostic, "CRASHED")
	})

	t.Run("health check timeout", func(t *testing.T) {
		r := ClassifyDeployOutput("Starting app...\nhealth check timeout exceeded")
		assert.Equal(t, DeployHealthCheckTimeout, r.Outcome)
	})

	t.Run("service binding failure names the service", func(t *testing.T) {
		r := ClassifyDeployOutput("Could not find service my-postgres to bind to app")
		assert.Equal(t, DeployServiceBindingFailure, r.Outcome)
		assert.Contains(t, r.Diagnostic, "my-postgres")
		assert.Contains(t, r.Diagnostic, "cf create-service")
	})

	t.Run("binding FAILED marker", func(t *testing.T) {
		r := ClassifyDeployOutput("Binding service my-redis to app myapp FAILED")
		assert.Equal(t, DeployServiceBindingFailure, r.Outcome)
	})

	t.Run("crash marker wins over success markers", func(t *testing.T) {
		out := "App started\nroutes: myapp.apps.example.com\nlater: App instance exited"
		r := ClassifyDeployOutput(out)
		assert.Equal(t, DeployAppCrashed, r.Outcome)
	})

	t.Run("unrecognized output is treated as crashed", func(t *testing.T) {
		r := ClassifyDeployOutput("nothing useful here")
		assert.Equal(t, DeployAppCrashed, r.Outcome)
		assert.Contains(t, r.Diagnostic, "no known marker")
	})
}

func TestExtractDeploymentURL(t *testing.T) {
	t.Run("route singular", func(t *testing.T) {
		assert.Equal(t, "myapp.example.com", ExtractDeploymentURL("route: myapp.example.com"))
	})

	t.Run("trailing comma stripped", func(t *testing.T) {
		assert.Equal(t, "myapp.example.com", ExtractDeploymentURL("routes: myapp.example.com, other.example.com"))
	})

	t.Run("no url", func(t *testing.T) {
		assert.Empty(t, ExtractDeploymentURL("no routes here"))
	})
}
