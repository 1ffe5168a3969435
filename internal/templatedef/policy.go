package templatedef

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-logr/logr"

	"github.com/vexxhost/magnum/internal/util/labels"
)

// ProjectIDPlaceholder is replaced with the cluster's project in the
// keystone auth policy.
const ProjectIDPlaceholder = "$PROJECT_ID"

const defaultKeystoneAuthPolicy = `[{"resource": {"verbs": ["list"],
    "resources": ["pods", "services", "deployments", "pvc"],
    "version": "*", "namespace": "default"},
    "match": [{"type": "role","values": ["member"]},
    {"type": "project", "values": ["$PROJECT_ID"]}]}]`

// sortedDefaultPolicy is the built-in policy re-serialized with sorted keys.
var sortedDefaultPolicy = mustSortKeys(defaultKeystoneAuthPolicy)

func mustSortKeys(doc string) string {
	var v any
	if err := json.Unmarshal([]byte(doc), &v); err != nil {
		panic(fmt.Sprintf("invalid built-in keystone auth policy: %v", err))
	}
	out, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("invalid built-in keystone auth policy: %v", err))
	}
	return string(out)
}

// DefaultKeystoneAuthPolicy returns the built-in policy with sorted keys and
// the project placeholder intact.
func DefaultKeystoneAuthPolicy() string {
	return sortedDefaultPolicy
}

// setKeystoneAuthPolicy renders the keystone auth policy when
// keystone_auth_enabled is true in the parameters built so far (default
// true).
func (d *Definition) setKeystoneAuthPolicy(ctx context.Context, b *builder, projectID string) {
	enabled, ok := b.get(labels.KeyKeystoneAuthEnabled)
	if ok && !truthy(enabled) {
		return
	}
	b.set("keystone_auth_default_policy", d.renderKeystoneAuthPolicy(ctx, projectID))
}

// renderKeystoneAuthPolicy loads the configured policy file, falling back to
// the built-in policy, then escapes quotes and substitutes the project.
func (d *Definition) renderKeystoneAuthPolicy(ctx context.Context, projectID string) string {
	path := d.cfg.Kubernetes.KeystoneAuthDefaultPolicy

	doc, err := d.loadPolicyFile(path)
	if err != nil {
		logr.FromContextOrDiscard(ctx).Error(err, "Failed to load default keystone auth policy", "path", path)
		policyFallbackTotal.Inc()
		doc = sortedDefaultPolicy
	}

	return strings.NewReplacer(`"`, `\"`, ProjectIDPlaceholder, projectID).Replace(doc)
}

// loadPolicyFile reads the policy at path and returns it as compact JSON in
// its original key order. Any well-formed JSON document is accepted; rule
// shapes (resource, nonresource, ...) belong to k8s-keystone-auth.
func (d *Definition) loadPolicyFile(path string) (string, error) {
	if path == "" {
		return "", errors.New("no policy file configured")
	}

	data, err := d.readFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read policy file: %w", err)
	}

	data = bytes.TrimSpace(data)
	if !json.Valid(data) {
		return "", errors.New("failed to parse policy file: not a single valid JSON document")
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return "", fmt.Errorf("failed to compact policy file: %w", err)
	}
	return buf.String(), nil
}

func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return labels.ParseBool(t)
	case nil:
		return false
	default:
		return labels.ParseBool(fmt.Sprint(t))
	}
}
