package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/provenv/internal/app"
	"go.trai.ch/provenv/internal/core/domain"
	"go.trai.ch/provenv/internal/core/ports/mocks"
	"go.trai.ch/provenv/internal/engine/provision"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type stubEngine struct {
	gotCfg *domain.Config
	res    *provision.Result
	err    error
}

func (s *stubEngine) Provision(_ context.Context, cfg *domain.Config) (*provision.Result, error) {
	s.gotCfg = cfg
	return s.res, s.err
}

func newApp(t *testing.T, engine app.Engine) (*app.App, *mocks.MockConfigLoader) {
	t.Helper()
	ctrl := gomock.NewController(t)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	loader := mocks.NewMockConfigLoader(ctrl)
	return app.New(loader, engine, log), loader
}

func TestSetup(t *testing.T) {
	engine := &stubEngine{res: &provision.Result{Path: "/srv/venv-cache/abc/venv"}}
	a, loader := newApp(t, engine)

	loader.EXPECT().Load("provenv.yaml").
		Return(&domain.Config{Requirements: "requirements/prod.txt"}, nil)

	err := a.Setup(context.Background(), "provenv.yaml", "")
	require.NoError(t, err)
	assert.Equal(t, "requirements/prod.txt", engine.gotCfg.Requirements)
}

func TestSetup_RequirementsOverride(t *testing.T) {
	engine := &stubEngine{res: &provision.Result{Path: "/srv/venv-cache/abc/venv"}}
	a, loader := newApp(t, engine)

	loader.EXPECT().Load("provenv.yaml").
		Return(&domain.Config{Requirements: "requirements/prod.txt"}, nil)

	err := a.Setup(context.Background(), "provenv.yaml", "requirements/dev.txt")
	require.NoError(t, err)
	assert.Equal(t, "requirements/dev.txt", engine.gotCfg.Requirements)
}

func TestSetup_ConfigLoadError(t *testing.T) {
	engine := &stubEngine{}
	a, loader := newApp(t, engine)

	loader.EXPECT().Load("missing.yaml").Return(nil, zerr.New("no such file"))

	err := a.Setup(context.Background(), "missing.yaml", "")
	require.Error(t, err)
	assert.Nil(t, engine.gotCfg)
}

func TestSetup_ProvisionError(t *testing.T) {
	engine := &stubEngine{err: domain.ErrInstallFailed}
	a, loader := newApp(t, engine)

	loader.EXPECT().Load("provenv.yaml").
		Return(&domain.Config{Requirements: "requirements/prod.txt"}, nil)

	err := a.Setup(context.Background(), "provenv.yaml", "")
	require.Error(t, err)
	assert.ErrorContains(t, err, "provisioning failed")
}
