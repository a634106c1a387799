// Package installer locates the dependency installer for a new application and
// runs it. A composer.phar in the working directory wins over a composer
// found on PATH; the composed command line is executed through the platform
// shell inside the application directory.
package installer
