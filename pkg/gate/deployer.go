package gate

import (
	"fmt"
	"regexp"
	"strings"
)

// DeployOutcome classifies a DEPLOYER task's captured output.
type DeployOutcome string

// Deployment outcome classes.
const (
	DeploySuccess               DeployOutcome = "SUCCESS"
	DeployBuildFailure          DeployOutcome = "BUILD_FAILURE"
	DeployStagingFailure        DeployOutcome = "STAGING_FAILURE"
	DeployAppCrashed            DeployOutcome = "APP_CRASHED"
	DeployHealthCheckTimeout    DeployOutcome = "HEALTH_CHECK_TIMEOUT"
	DeployServiceBindingFailure DeployOutcome = "SERVICE_BINDING_FAILURE"
)

// DeployResult is the classified deployment outcome plus retry guidance.
type DeployResult struct {
	Outcome    DeployOutcome
	URL        string // set on SUCCESS
	Diagnostic string // set on failure, fed into the retry's input context
}

var (
	routeRe = regexp.MustCompile(`routes?:\s*(\S+)`)
	urlRe   = regexp.MustCompile(`https?://\S+\.apps\.\S+`)

	// missingServiceRe captures the service name for the retry diagnostic.
	missingServiceRe = regexp.MustCompile(`Could not find service (\S+)`)
	bindFailedRe     = regexp.MustCompile(`Binding service .* FAILED`)

	crashLineRe = regexp.MustCompile(`(?m)^.*(CRASHED|App instance exited).*$`)

	successMarkers = []string{
		"App started",
		"instances running",
		"status: running",
		"requested state: started",
	}
)

// ClassifyDeployOutput maps deployment output to one of the six outcome
// classes via substring markers. Failure markers win over success markers: a
// log can show a started app and a later crash.
func ClassifyDeployOutput(output string) DeployResult {
	switch {
	case strings.Contains(output, "BUILD FAILURE") || strings.Contains(output, "Compilation error"):
		return DeployResult{
			Outcome:    DeployBuildFailure,
			Diagnostic: "build failed; fix compilation before redeploying",
		}
	case strings.Contains(output, "Staging error") || strings.Contains(output, "Unable to detect buildpack"):
		return DeployResult{
			Outcome:    DeployStagingFailure,
			Diagnostic: "staging failed; check the buildpack declaration in the manifest",
		}
	case missingServiceRe.MatchString(output) || bindFailedRe.MatchString(output):
		diag := "service binding failed"
		if m := missingServiceRe.FindStringSubmatch(output); m != nil {
			diag = fmt.Sprintf("service %q not found; create it first (e.g. cf create-service) or remove the binding", m[1])
		}
		return DeployResult{Outcome: DeployServiceBindingFailure, Diagnostic: diag}
	case strings.Contains(output, "health check timeout") || strings.Contains(output, "health check failed"):
		return DeployResult{
			Outcome:    DeployHealthCheckTimeout,
			Diagnostic: "health check never passed; verify the endpoint and raise the timeout if startup is slow",
		}
	case strings.Contains(output, "CRASHED") || strings.Contains(output, "App instance exited"):
		diag := "app crashed after start"
		if m := crashLineRe.FindString(output); m != "" {
			diag = "app crashed: " + strings.TrimSpace(m)
		}
		return DeployResult{Outcome: DeployAppCrashed, Diagnostic: diag}
	}

	for _, marker := range successMarkers {
		if !strings.Contains(output, marker) {
			continue
		}
		// A started app without a bound route is not reachable, so success
		// also requires a route or URL in the output.
		url := ExtractDeploymentURL(output)
		if url == "" {
			return DeployResult{
				Outcome:    DeployStagingFailure,
				Diagnostic: "app reports started but no route was bound; declare a route in the manifest",
			}
		}
		return DeployResult{Outcome: DeploySuccess, URL: url}
	}

	return DeployResult{
		Outcome:    DeployAppCrashed,
		Diagnostic: "deployment output matched no known marker; treating as crashed",
	}
}

// ExtractDeploymentURL returns the first route token or apps-domain URL
// found in the output, or empty.
func ExtractDeploymentURL(output string) string {
	if m := routeRe.FindStringSubmatch(output); m != nil {
		return strings.TrimRight(m[1], ",")
	}
	return urlRe.FindString(output)
}
