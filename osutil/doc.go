/*
Package osutil hides the platform differences of operating system facilities. Currently
that is just access to the local syslog daemon, which does not exist on all platforms.
*/
package osutil
