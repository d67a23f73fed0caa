package user

import (
	"os"
	"testing"
	"time"

	"gitee.com/taoJie_1/erp-agent/global"
	"github.com/sirupsen/logrus"
)

func TestMain(m *testing.M) {
	global.Log = logrus.New()
	global.Log.SetOutput(os.Stderr)
	global.Tz = time.UTC
	global.MenuCatalog.Replace(DefaultMenuTree())
	os.Exit(m.Run())
}
