package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalStore 本地磁盘存储，文件通过静态路由对外提供
type LocalStore struct {
	dir        string
	publicPath string
}

// NewLocalStore 创建本地存储；dir 为根目录，publicPath 为对外访问前缀（如 /uploads）
func NewLocalStore(dir, publicPath string) *LocalStore {
	return &LocalStore{
		dir:        dir,
		publicPath: "/" + strings.Trim(publicPath, "/"),
	}
}

// Put 写入 {dir}/{folder}/{uuid}{ext}，返回 {publicPath}/{folder}/{uuid}{ext}
func (s *LocalStore) Put(ctx context.Context, obj Object) (string, error) {
	if err := checkFolder(obj.Folder); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	folderDir := filepath.Join(s.dir, obj.Folder)
	if err := os.MkdirAll(folderDir, 0o755); err != nil {
		return "", fmt.Errorf("创建目录失败: %w", err)
	}

	name := objectName(obj.Ext)
	if err := os.WriteFile(filepath.Join(folderDir, name), obj.Data, 0o644); err != nil {
		return "", fmt.Errorf("写入文件失败: %w", err)
	}

	return path.Join(s.publicPath, obj.Folder, name), nil
}

// Backend 返回后端名称
func (s *LocalStore) Backend() string { return BackendLocal }

// Dir 返回本地根目录，供静态路由挂载
func (s *LocalStore) Dir() string { return s.dir }

// PublicPath 返回对外访问前缀
func (s *LocalStore) PublicPath() string { return s.publicPath }
