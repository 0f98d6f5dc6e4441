package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/retro/cmd/retro/commands"
	"go.trai.ch/retro/internal/adapters/telemetry"
	"go.trai.ch/retro/internal/app"
	"go.trai.ch/retro/internal/core/domain"
	"go.trai.ch/retro/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type recordingSwitch struct {
	calls []bool
}

func (r *recordingSwitch) SetJSON(enable bool) {
	r.calls = append(r.calls, enable)
}

type fixture struct {
	loader   *mocks.MockConfigLoader
	host     *mocks.MockHostDetector
	embedded *mocks.MockBackend
	forked   *mocks.MockBackend
	logger   *mocks.MockLogger
	logs     *recordingSwitch
	cli      *commands.CLI
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		loader:   mocks.NewMockConfigLoader(ctrl),
		host:     mocks.NewMockHostDetector(ctrl),
		embedded: mocks.NewMockBackend(ctrl),
		forked:   mocks.NewMockBackend(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		logs:     &recordingSwitch{},
	}
	f.embedded.EXPECT().Name().Return("embedded").AnyTimes()
	f.forked.EXPECT().Name().Return("forked").AnyTimes()

	a := app.New(f.loader, f.host, f.embedded, f.forked, telemetry.NewNoOpTracer(), f.logger)
	f.cli = commands.New(a, f.logs)
	return f
}

func params(target string) domain.Parameters {
	return domain.Parameters{
		Target:    target,
		InputDir:  "/p/target/classes",
		OutputDir: "/p/target/classes",
		BuildDir:  "/p/target",
	}
}

func TestProcessClasses_Success(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(gomock.Any(), "", domain.GoalMain).Return(params("1.8"), nil)
	f.host.EXPECT().Detect(gomock.Any()).Return(domain.Host{JavaVersion: "17"}, nil)
	f.embedded.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil)

	f.cli.SetArgs([]string{"process-classes", "--log-format", "json"})

	require.NoError(t, f.cli.Execute(context.Background()))
	assert.Equal(t, []bool{true}, f.logs.calls)
}

func TestProcessTestClasses_FlagsBecomeDefines(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(gomock.Any(), "build/retro.yaml", domain.GoalTest).Return(params("1.7"), nil)
	f.host.EXPECT().Detect(gomock.Any()).Return(domain.Host{JavaVersion: "1.8.0_292"}, nil)
	f.forked.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, inv domain.Invocation) error {
		assert.True(t, inv.Config.Fork)
		assert.True(t, inv.Config.Quiet)
		assert.Equal(t, domain.Target("1.5"), inv.Config.Target)
		return nil
	})

	f.cli.SetArgs([]string{
		"process-test-classes",
		"-c", "build/retro.yaml",
		"--fork",
		"-D", "retrolambdaTarget=1.5",
		"-D", "retrolambdaQuiet",
		"--log-format", "pretty",
	})

	require.NoError(t, f.cli.Execute(context.Background()))
	assert.Equal(t, []bool{false}, f.logs.calls)
}

func TestProcessClasses_SkipFlag(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(gomock.Any(), "", domain.GoalMain).Return(params("bogus"), nil)
	f.logger.EXPECT().Info("Skipping execution (skip=true)")

	f.cli.SetArgs([]string{"process-classes", "--skip"})

	require.NoError(t, f.cli.Execute(context.Background()))
}

func TestProcessClasses_InvalidDefine(t *testing.T) {
	f := newFixture(t)

	f.cli.SetArgs([]string{"process-classes", "-D", "=1.8"})

	err := f.cli.Execute(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid property override")
}

func TestProcessClasses_InvalidTarget(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(gomock.Any(), "", domain.GoalMain).Return(params("1.4"), nil)
	f.host.EXPECT().Detect(gomock.Any()).Return(domain.Host{JavaVersion: "17"}, nil)

	f.cli.SetArgs([]string{"process-classes"})

	err := f.cli.Execute(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "Possible values are 1.5, 1.6, 1.7, 1.8")
}

func TestRoot_InvalidLogFormat(t *testing.T) {
	f := newFixture(t)

	f.cli.SetArgs([]string{"process-classes", "--log-format", "xml"})

	err := f.cli.Execute(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid log format")
	assert.Empty(t, f.logs.calls)
}

func TestRoot_Help(t *testing.T) {
	f := newFixture(t)

	var out bytes.Buffer
	f.cli.SetOut(&out)
	f.cli.SetArgs([]string{"--help"})

	require.NoError(t, f.cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "process-classes")
	assert.Contains(t, out.String(), "process-test-classes")
}

func TestVersion(t *testing.T) {
	f := newFixture(t)

	var out bytes.Buffer
	f.cli.SetOut(&out)
	f.cli.SetArgs([]string{"version"})

	require.NoError(t, f.cli.Execute(context.Background()))
	assert.Equal(t, "retro version dev (none)\n", out.String())
}
