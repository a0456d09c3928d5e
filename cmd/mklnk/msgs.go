package mklnk

// Message constants
const (
	MsgRootShort = "Portable symbolic, junction, and hard/soft link creator"
	MsgRootLong  = `mklnk creates filesystem links on Windows. Exactly one link type must
be selected:

  --soft      directory symbolic link
  --hard      hard link
  --symbolic  file symbolic link
  --junction  directory junction (mount-point reparse point)

Junctions are built by hand: mklnk creates an empty directory at the
link path, encodes the target into a mount-point reparse buffer, and
installs it with FSCTL_SET_REPARSE_POINT.`

	MsgRootExample = `  # Create a junction
  mklnk --junction -t C:\tmp\linkA -o C:\tmp\real

  # Create a file symbolic link
  mklnk -d -t C:\tmp\note.lnk -o C:\tmp\note.txt

  # Create a hard link
  mklnk --hard -t C:\tmp\copy.txt -o C:\tmp\orig.txt`

	MsgFlagLink     = "Source path where the link will be created"
	MsgFlagTarget   = "Destination path the link points to"
	MsgFlagSoft     = "Create a soft link (directory symlink)"
	MsgFlagHard     = "Create a hard link"
	MsgFlagSymbolic = "Create a symbolic link (file symlink)"
	MsgFlagJunction = "Create a junction point"
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagColor    = "Color output: auto, always, or never"
	MsgFlagConfig   = "Path to a config file (default: XDG config dir)"
)
