package commands_test

import (
	"context"
	"testing"

	"go.trai.ch/provenv/cmd/provenv/commands"
	"go.trai.ch/provenv/internal/app"
	"go.trai.ch/provenv/internal/core/domain"
	"go.trai.ch/provenv/internal/core/ports/mocks"
	"go.trai.ch/provenv/internal/engine/provision"
	"go.uber.org/mock/gomock"
)

type stubEngine struct {
	gotCfg *domain.Config
	err    error
}

func (s *stubEngine) Provision(_ context.Context, cfg *domain.Config) (*provision.Result, error) {
	s.gotCfg = cfg
	if s.err != nil {
		return nil, s.err
	}
	return &provision.Result{Path: "/srv/venv-cache/abc/venv", Packages: domain.NewPackageSet()}, nil
}

func newCLI(t *testing.T) (*commands.CLI, *mocks.MockConfigLoader, *stubEngine) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	engine := &stubEngine{}
	a := app.New(mockLoader, engine, mockLogger)
	return commands.New(a), mockLoader, engine
}

func TestSetup_Success(t *testing.T) {
	cli, mockLoader, engine := newCLI(t)

	mockLoader.EXPECT().Load("provenv.yaml").
		Return(&domain.Config{Requirements: "requirements/prod.txt"}, nil).Times(1)

	cli.SetArgs([]string{"setup"})

	err := cli.Execute(context.Background())
	if err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
	if engine.gotCfg == nil || engine.gotCfg.Requirements != "requirements/prod.txt" {
		t.Errorf("Expected engine to run with the configured manifest, got: %+v", engine.gotCfg)
	}
}

func TestSetup_Flags(t *testing.T) {
	cli, mockLoader, engine := newCLI(t)

	// Both the config path and the manifest come from flags.
	mockLoader.EXPECT().Load("custom.yaml").
		Return(&domain.Config{Requirements: "requirements/prod.txt"}, nil).Times(1)

	cli.SetArgs([]string{"setup", "--config", "custom.yaml", "--requirements", "requirements/dev.txt"})

	err := cli.Execute(context.Background())
	if err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
	if engine.gotCfg == nil || engine.gotCfg.Requirements != "requirements/dev.txt" {
		t.Errorf("Expected the flag to override the manifest, got: %+v", engine.gotCfg)
	}
}

func TestSetup_ProvisionError(t *testing.T) {
	cli, mockLoader, engine := newCLI(t)
	engine.err = domain.ErrInstallFailed

	mockLoader.EXPECT().Load("provenv.yaml").
		Return(&domain.Config{Requirements: "requirements/prod.txt"}, nil).Times(1)

	cli.SetArgs([]string{"setup"})

	err := cli.Execute(context.Background())
	if err == nil {
		t.Error("Expected an error when provisioning fails")
	}
}

func TestVersion(t *testing.T) {
	cli, _, _ := newCLI(t)

	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	if err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestRoot_Help(t *testing.T) {
	cli, _, _ := newCLI(t)

	cli.SetArgs([]string{"--help"})

	err := cli.Execute(context.Background())
	if err != nil {
		t.Errorf("Expected no error for help, got: %v", err)
	}
}
