//go:build unix

package files

import (
	"fmt"
	"os"
	"os/user"
	"strconv"

	"golang.org/x/sys/unix"
)

// Owner returns the user name owning the named file, or its numeric uid if
// the user is not known to the system.
func Owner(path string) (string, error) {
	uid, _, err := ids(path)
	if err != nil {
		return "", err
	}
	if u, err := user.LookupId(strconv.Itoa(uid)); err == nil {
		return u.Username, nil
	}
	return strconv.Itoa(uid), nil
}

// Group returns the group name owning the named file, or its numeric gid if
// the group is not known to the system.
func Group(path string) (string, error) {
	_, gid, err := ids(path)
	if err != nil {
		return "", err
	}
	if g, err := user.LookupGroupId(strconv.Itoa(gid)); err == nil {
		return g.Name, nil
	}
	return strconv.Itoa(gid), nil
}

// SetOwner changes the owning user of the named file. The owner may be a
// user name or a numeric uid.
func SetOwner(path, owner string) error {
	uid, err := lookupUID(owner)
	if err != nil {
		return err
	}
	return os.Chown(path, uid, -1)
}

// SetGroup changes the owning group of the named file. The group may be a
// group name or a numeric gid.
func SetGroup(path, group string) error {
	gid, err := lookupGID(group)
	if err != nil {
		return err
	}
	return os.Chown(path, -1, gid)
}

func ids(path string) (uid, gid int, err error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return 0, 0, fmt.Errorf("stat %s: %w", path, err)
	}
	return int(st.Uid), int(st.Gid), nil
}

func lookupUID(owner string) (int, error) {
	if uid, err := strconv.Atoi(owner); err == nil {
		return uid, nil
	}
	u, err := user.Lookup(owner)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(u.Uid)
}

func lookupGID(group string) (int, error) {
	if gid, err := strconv.Atoi(group); err == nil {
		return gid, nil
	}
	g, err := user.LookupGroup(group)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(g.Gid)
}
